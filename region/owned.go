// File: region/owned.go
// Package region
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Owned is a fixed-capacity region whose bytes belong to the handle
// itself. Zone semantics are identical to PackedSlice; the metadata lives
// in ordinary struct fields because no external party shares the storage.

package region

import "github.com/momentics/zbuf/api"

// Owned holds its storage directly. Useful where a stable, named
// allocation is wanted without wrapping external memory.
type Owned struct {
	buf      []byte
	headroom int
	tailroom int
}

// NewOwned allocates an Owned region once, with the given capacity and
// initial headroom and an empty payload.
func NewOwned(capacity, headroom int) (*Owned, error) {
	if capacity < 0 {
		return nil, api.ErrRegionTooSmall
	}
	if headroom < 0 || headroom > capacity {
		return nil, api.ErrInsufficientHeadroom
	}
	return &Owned{
		buf:      make([]byte, capacity),
		headroom: headroom,
		tailroom: capacity - headroom,
	}, nil
}

func (o *Owned) PayloadLen() int { return len(o.buf) - o.headroom - o.tailroom }
func (o *Owned) Headroom() int   { return o.headroom }
func (o *Owned) Tailroom() int   { return o.tailroom }
func (o *Owned) Capacity() int   { return len(o.buf) }

func (o *Owned) Payload() []byte {
	return o.buf[o.headroom : len(o.buf)-o.tailroom]
}

func (o *Owned) WritePayload(off int, p []byte) error {
	if off < 0 || off+len(p) > o.PayloadLen() {
		return api.ErrPayloadOverrun
	}
	copy(o.buf[o.headroom+off:], p)
	return nil
}

func (o *Owned) Prepend(p []byte) error {
	if len(p) > o.headroom {
		return api.ErrInsufficientHeadroom
	}
	copy(o.buf[o.headroom-len(p):], p)
	o.headroom -= len(p)
	return nil
}

func (o *Owned) Append(p []byte) error {
	if len(p) > o.tailroom {
		return api.ErrInsufficientTailroom
	}
	copy(o.buf[len(o.buf)-o.tailroom:], p)
	o.tailroom -= len(p)
	return nil
}

func (o *Owned) AppendMax(p []byte) int {
	n := len(p)
	if n > o.tailroom {
		n = o.tailroom
	}
	copy(o.buf[len(o.buf)-o.tailroom:], p[:n])
	o.tailroom -= n
	return n
}

func (o *Owned) CopyPayloadFrom(p []byte) error {
	if len(p) > len(o.buf)-o.headroom {
		return api.ErrPayloadOverrun
	}
	copy(o.buf[o.headroom:], p)
	o.tailroom = len(o.buf) - o.headroom - len(p)
	return nil
}

func (o *Owned) ReclaimHeadroom(n int) bool {
	if n < 0 || n > len(o.buf)-o.tailroom {
		return false
	}
	o.headroom = n
	return true
}

func (o *Owned) ReclaimTailroom(n int) bool {
	if n < 0 || n > len(o.buf)-o.headroom {
		return false
	}
	o.tailroom = n
	return true
}

func (o *Owned) Reset(headroom int) bool {
	if headroom < 0 || headroom > len(o.buf) {
		return false
	}
	o.headroom = headroom
	o.tailroom = len(o.buf) - headroom
	return true
}

// Raw returns the full capacity span for DMA handoff.
func (o *Owned) Raw() []byte { return o.buf }

var _ api.Region = (*Owned)(nil)
