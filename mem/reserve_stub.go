//go:build !linux
// +build !linux

// File: mem/reserve_stub.go
// Package mem
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

func reserve(n int) []byte {
	return make([]byte, n)
}
