// Package api
// Author: momentics <momentics@gmail.com>
//
// Capability contract for zero-copy buffer regions.
//
// A region is one linear span of bytes divided into three zones: headroom
// (reserved space before the payload), payload (active data), and tailroom
// (reserved space after the payload). Layers prepend and append header or
// footer bytes by moving zone boundaries; the payload is never copied unless
// a copy is explicitly requested.

package api

// Region is the minimal operation set every buffer implementation provides.
//
// Zone invariant for a single region: after every successful operation,
// Headroom() + PayloadLen() + Tailroom() == Capacity(). Mutating operations
// move zone boundaries, never capacity.
//
// A region has exactly one owner at a time. Handing a region to a lower
// layer or to hardware transfers exclusive ownership; the region comes back
// through a completion callback. Two live handles to the same region are
// never permitted.
type Region interface {
	// PayloadLen returns the length of the active payload in bytes.
	// For a chained region this sums across links.
	PayloadLen() int

	// Headroom returns the reserved, unused space before the payload.
	Headroom() int

	// Tailroom returns the reserved, unused space after the payload.
	Tailroom() int

	// Capacity returns headroom + payload + tailroom.
	Capacity() int

	// Payload returns the active payload span. The slice aliases the
	// region's storage and is valid only while the caller owns the region.
	Payload() []byte

	// WritePayload copies p into the payload starting at off. It fails
	// with ErrPayloadOverrun when off+len(p) exceeds the current payload;
	// zone boundaries are left untouched on failure.
	WritePayload(off int, p []byte) error

	// Prepend moves the payload start backward by len(p), consuming
	// headroom, and writes p immediately before the old payload start.
	// Fails with ErrInsufficientHeadroom, leaving boundaries unchanged.
	Prepend(p []byte) error

	// Append extends the payload by len(p), consuming tailroom, and
	// writes p immediately after the old payload end. Fails with
	// ErrInsufficientTailroom, leaving boundaries unchanged.
	Append(p []byte) error

	// AppendMax appends as much of p as the tailroom permits and returns
	// the number of bytes written.
	AppendMax(p []byte) int

	// CopyPayloadFrom discards the payload and replaces it with p,
	// keeping the current headroom. Fails with ErrPayloadOverrun when p
	// does not fit between the headroom mark and the end of the region.
	CopyPayloadFrom(p []byte) error

	// ReclaimHeadroom forces the headroom to exactly n bytes without
	// writing, committing space the caller already filled directly.
	// It will not move past the tailroom mark. Reports false, with the
	// region unmodified, when n cannot be satisfied.
	ReclaimHeadroom(n int) bool

	// ReclaimTailroom is the symmetric operation on the tail boundary.
	ReclaimTailroom(n int) bool

	// Reset discards the payload, re-establishes headroom bytes of
	// headroom and leaves the remainder as tailroom. Used when the region
	// is recycled by a fresh owner. Reports false, with the region
	// unmodified, when headroom exceeds the capacity.
	Reset(headroom int) bool

	// Raw exposes the region's full backing span for handing to a
	// DMA-capable peripheral. The caller must still own the region, and
	// must pair the handoff with the platform's memory barriers before
	// giving the span to hardware and after receiving it back.
	Raw() []byte
}
