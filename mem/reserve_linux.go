//go:build linux
// +build linux

// File: mem/reserve_linux.go
// Package mem
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux reservation via anonymous mmap. The mapping is page-aligned, which
// DMA-capable peripherals and IOMMU setups generally want, and mlock is
// attempted so the span cannot be paged out under a transfer. Fallback to
// the Go heap if the mapping fails (e.g. under tight rlimits).

package mem

import "golang.org/x/sys/unix"

func reserve(n int) []byte {
	span, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return make([]byte, n)
	}
	// Best effort: RLIMIT_MEMLOCK may forbid it, which is fine for
	// non-DMA use.
	_ = unix.Mlock(span)
	return span[:n]
}
