// File: region/chain.go
// Package region
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Chain links a region to an optional next region, forming a bounded
// non-contiguous sequence. Only the first link exposes headroom and only
// the last exposes tailroom. Writes never straddle a link boundary: a
// write that does not fit inside one link fails instead of silently
// truncating or auto-splitting.

package region

import "github.com/momentics/zbuf/api"

// MaxChainDepth bounds the number of linked regions in one chain.
const MaxChainDepth = 4

// Chain is a region spanning physically separate spans. A Chain satisfies
// the capability contract, but it is not meant to back a sized handle:
// room declarations describe one contiguous region, and the erased layer
// stack expects the same.
type Chain struct {
	region api.Region
	next   api.Region // nil on the terminal link
}

// depthOf counts the plain regions reachable from r, r included.
func depthOf(r api.Region) int {
	c, ok := r.(*Chain)
	if !ok {
		return 1
	}
	d := depthOf(c.region)
	if c.next != nil {
		d += depthOf(c.next)
	}
	return d
}

// Link joins first and next into a chain. Either argument may itself be a
// chain; the combined depth must stay within MaxChainDepth.
func Link(first, next api.Region) (*Chain, error) {
	if depthOf(first)+depthOf(next) > MaxChainDepth {
		return nil, api.ErrChainDepth
	}
	return &Chain{region: first, next: next}, nil
}

// Next returns the linked region, nil on a terminal link.
func (c *Chain) Next() api.Region { return c.next }

// PayloadLen sums the payload across links.
func (c *Chain) PayloadLen() int {
	n := c.region.PayloadLen()
	if c.next != nil {
		n += c.next.PayloadLen()
	}
	return n
}

// Headroom is the first link's headroom.
func (c *Chain) Headroom() int { return c.region.Headroom() }

// Tailroom is the last link's tailroom.
func (c *Chain) Tailroom() int {
	if c.next != nil {
		return c.next.Tailroom()
	}
	return c.region.Tailroom()
}

// Capacity sums across links.
func (c *Chain) Capacity() int {
	n := c.region.Capacity()
	if c.next != nil {
		n += c.next.Capacity()
	}
	return n
}

// Payload returns the first link's contiguous payload span. Use
// CopyPayload to gather a multi-link payload.
func (c *Chain) Payload() []byte { return c.region.Payload() }

// CopyPayload gathers the chain's payload into dst and returns the number
// of bytes copied. This is the one explicitly copying accessor.
func (c *Chain) CopyPayload(dst []byte) int {
	n := copy(dst, c.region.Payload())
	if c.next == nil {
		return n
	}
	if nc, ok := c.next.(*Chain); ok {
		return n + nc.CopyPayload(dst[n:])
	}
	return n + copy(dst[n:], c.next.Payload())
}

// WritePayload writes into the link containing the offset range. A write
// straddling two links fails with ErrPayloadOverrun.
func (c *Chain) WritePayload(off int, p []byte) error {
	first := c.region.PayloadLen()
	switch {
	case off+len(p) <= first:
		return c.region.WritePayload(off, p)
	case off >= first && c.next != nil:
		return c.next.WritePayload(off-first, p)
	default:
		return api.ErrPayloadOverrun
	}
}

// Prepend consumes the first link's headroom.
func (c *Chain) Prepend(p []byte) error { return c.region.Prepend(p) }

// Append consumes the last link's tailroom.
func (c *Chain) Append(p []byte) error {
	if c.next != nil {
		return c.next.Append(p)
	}
	return c.region.Append(p)
}

// AppendMax appends into the last link only; it does not spill into
// earlier links.
func (c *Chain) AppendMax(p []byte) int {
	if c.next != nil {
		return c.next.AppendMax(p)
	}
	return c.region.AppendMax(p)
}

// CopyPayloadFrom replaces the payload, which must fit inside the first
// link; the later links must already be empty.
func (c *Chain) CopyPayloadFrom(p []byte) error {
	if c.next != nil && c.next.PayloadLen() != 0 {
		return api.ErrPayloadOverrun
	}
	return c.region.CopyPayloadFrom(p)
}

// ReclaimHeadroom moves the first link's headroom mark.
func (c *Chain) ReclaimHeadroom(n int) bool { return c.region.ReclaimHeadroom(n) }

// ReclaimTailroom moves the last link's tailroom mark.
func (c *Chain) ReclaimTailroom(n int) bool {
	if c.next != nil {
		return c.next.ReclaimTailroom(n)
	}
	return c.region.ReclaimTailroom(n)
}

// Reset discards the payload of every link. The headroom is
// re-established on the first link; later links keep zero headroom.
func (c *Chain) Reset(headroom int) bool {
	if !c.region.Reset(headroom) {
		return false
	}
	if c.next != nil {
		return c.next.Reset(0)
	}
	return true
}

// Raw returns the first link's span. Chained regions are not handed to
// DMA engines as one unit; scatter/gather stays with the driver.
func (c *Chain) Raw() []byte { return c.region.Raw() }

var _ api.Region = (*Chain)(nil)
