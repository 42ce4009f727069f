// File: region/slice.go
// Package region implements buffer regions over borrowed memory.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// PackedSlice turns one caller-supplied byte span into one region handle
// with no secondary bookkeeping allocation: the zone metadata lives at a
// fixed offset at the front of the span itself. The span is raw memory
// with no alignment guarantee, so every multi-byte field is assembled
// byte-by-byte (little-endian) instead of being read through a pointer
// cast.

package region

import (
	"encoding/binary"
	"fmt"

	"github.com/momentics/zbuf/api"
)

// Packed metadata layout at the front of the borrowed span.
const (
	offSpanLen  = 0
	offHeadroom = 4
	offTailroom = 8

	// HeaderBytes is the metadata overhead a borrowed span pays.
	HeaderBytes = 12
)

// PackedSlice is a region over externally owned memory. The first
// HeaderBytes of the span hold the span length, headroom and tailroom;
// the remainder is the region's capacity.
type PackedSlice struct {
	span []byte
}

// WrapSlice claims span as a region with the given initial headroom and an
// empty payload; the remainder of the span becomes tailroom. The span must
// be at least HeaderBytes long. The caller must not touch the span again
// while the region is live.
func WrapSlice(span []byte, headroom int) (*PackedSlice, error) {
	if len(span) < HeaderBytes {
		return nil, api.ErrRegionTooSmall
	}
	data := len(span) - HeaderBytes
	if headroom < 0 || headroom > data {
		return nil, api.ErrInsufficientHeadroom
	}
	binary.LittleEndian.PutUint32(span[offSpanLen:], uint32(len(span)))
	binary.LittleEndian.PutUint32(span[offHeadroom:], uint32(headroom))
	binary.LittleEndian.PutUint32(span[offTailroom:], uint32(data-headroom))
	return &PackedSlice{span: span}, nil
}

func (s *PackedSlice) headroom() int {
	return int(binary.LittleEndian.Uint32(s.span[offHeadroom:]))
}

func (s *PackedSlice) tailroom() int {
	return int(binary.LittleEndian.Uint32(s.span[offTailroom:]))
}

func (s *PackedSlice) setHeadroom(n int) {
	binary.LittleEndian.PutUint32(s.span[offHeadroom:], uint32(n))
}

func (s *PackedSlice) setTailroom(n int) {
	binary.LittleEndian.PutUint32(s.span[offTailroom:], uint32(n))
}

func (s *PackedSlice) data() int { return len(s.span) - HeaderBytes }

// PayloadLen returns the active payload length.
func (s *PackedSlice) PayloadLen() int {
	return s.data() - s.headroom() - s.tailroom()
}

// Headroom returns the reserved space before the payload.
func (s *PackedSlice) Headroom() int { return s.headroom() }

// Tailroom returns the reserved space after the payload.
func (s *PackedSlice) Tailroom() int { return s.tailroom() }

// Capacity returns the usable span size, metadata excluded.
func (s *PackedSlice) Capacity() int { return s.data() }

// Payload returns the active payload span, aliasing the borrowed memory.
func (s *PackedSlice) Payload() []byte {
	start := HeaderBytes + s.headroom()
	return s.span[start : start+s.PayloadLen()]
}

// WritePayload copies p into the payload at off.
func (s *PackedSlice) WritePayload(off int, p []byte) error {
	if off < 0 || off+len(p) > s.PayloadLen() {
		return api.ErrPayloadOverrun
	}
	copy(s.span[HeaderBytes+s.headroom()+off:], p)
	return nil
}

// Prepend writes p immediately before the payload, consuming headroom.
func (s *PackedSlice) Prepend(p []byte) error {
	h := s.headroom()
	if len(p) > h {
		return api.ErrInsufficientHeadroom
	}
	copy(s.span[HeaderBytes+h-len(p):], p)
	s.setHeadroom(h - len(p))
	return nil
}

// Append writes p immediately after the payload, consuming tailroom.
func (s *PackedSlice) Append(p []byte) error {
	t := s.tailroom()
	if len(p) > t {
		return api.ErrInsufficientTailroom
	}
	copy(s.span[HeaderBytes+s.data()-t:], p)
	s.setTailroom(t - len(p))
	return nil
}

// AppendMax appends as much of p as fits and returns the count written.
func (s *PackedSlice) AppendMax(p []byte) int {
	t := s.tailroom()
	n := len(p)
	if n > t {
		n = t
	}
	copy(s.span[HeaderBytes+s.data()-t:], p[:n])
	s.setTailroom(t - n)
	return n
}

// CopyPayloadFrom replaces the payload with p, keeping the headroom mark.
func (s *PackedSlice) CopyPayloadFrom(p []byte) error {
	h := s.headroom()
	if len(p) > s.data()-h {
		return api.ErrPayloadOverrun
	}
	copy(s.span[HeaderBytes+h:], p)
	s.setTailroom(s.data() - h - len(p))
	return nil
}

// ReclaimHeadroom forces the headroom mark to n without writing. It will
// not move past the tailroom mark.
func (s *PackedSlice) ReclaimHeadroom(n int) bool {
	if n < 0 || n > s.data()-s.tailroom() {
		return false
	}
	s.setHeadroom(n)
	return true
}

// ReclaimTailroom forces the tailroom mark to n without writing.
func (s *PackedSlice) ReclaimTailroom(n int) bool {
	if n < 0 || n > s.data()-s.headroom() {
		return false
	}
	s.setTailroom(n)
	return true
}

// Reset discards the payload and re-establishes the requested headroom.
func (s *PackedSlice) Reset(headroom int) bool {
	if headroom < 0 || headroom > s.data() {
		return false
	}
	// Self-consistency guard: the packed span length must still match the
	// slice we wrapped. A mismatch means the metadata words were
	// overwritten, which no local error can recover from.
	if got := int(binary.LittleEndian.Uint32(s.span[offSpanLen:])); got != len(s.span) {
		panic(fmt.Sprintf("region: packed span length %d does not match slice length %d", got, len(s.span)))
	}
	s.setHeadroom(headroom)
	s.setTailroom(s.data() - headroom)
	return true
}

// Raw returns the full capacity span (headroom + payload + tailroom) for
// DMA handoff. Metadata is excluded; hardware never sees the zone words.
func (s *PackedSlice) Raw() []byte {
	return s.span[HeaderBytes:]
}

var _ api.Region = (*PackedSlice)(nil)
