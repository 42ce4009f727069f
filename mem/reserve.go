// File: mem/reserve.go
// Package mem reserves backing storage for buffer regions.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Board wiring reserves each region's span once, at initialization, and
// never releases it: spans live as long as the running system. On Linux
// the reservation is an anonymous page-aligned mapping pinned against
// swapping where permitted; elsewhere it falls back to the Go heap.

package mem

// Reserve returns a zeroed span of at least n bytes with system lifetime.
// The span is never deallocated.
func Reserve(n int) []byte {
	if n <= 0 {
		return nil
	}
	return reserve(n)
}
