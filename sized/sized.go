// File: sized/sized.go
// Package sized wraps a region with typed headroom/tailroom guarantees.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Handle[H, T] asserts that its region holds at least H bytes of headroom
// and T bytes of tailroom. The markers are part of the type signature, so
// a layer that requires eight bytes of headroom accepts Handle[R8, T] and
// nothing smaller. Narrowing the declared rooms is free: the handle's
// layout does not depend on H or T, so a conversion is a plain value move
// over the same inner region.
//
// A declared-room violation (asking for more than the source handle
// declares) is a wiring bug in the layer graph, not a traffic condition.
// The shrink functions fault on it immediately and loudly; the fault fires
// the first time the mis-wired path is built, which for board wiring means
// at boot.

package sized

import (
	"fmt"

	"github.com/momentics/zbuf/api"
)

// Handle is a typed reference to a region with guaranteed minimum rooms.
// The zero Handle is invalid; obtain one through New.
type Handle[H, T Room] struct {
	inner api.Region
}

// New wraps r after verifying its actual rooms cover the declared ones.
// ok is false when the region cannot back the requested guarantees.
func New[H, T Room](r api.Region) (Handle[H, T], bool) {
	if r == nil || r.Headroom() < Bytes[H]() || r.Tailroom() < Bytes[T]() {
		return Handle[H, T]{}, false
	}
	return Handle[H, T]{inner: r}, true
}

// Inner returns the wrapped region without any room guarantee.
func (h Handle[H, T]) Inner() api.Region { return h.inner }

// PayloadLen returns the active payload length.
func (h Handle[H, T]) PayloadLen() int { return h.inner.PayloadLen() }

// Headroom returns the actual headroom, always >= the declared H.
func (h Handle[H, T]) Headroom() int { return h.inner.Headroom() }

// Tailroom returns the actual tailroom, always >= the declared T.
func (h Handle[H, T]) Tailroom() int { return h.inner.Tailroom() }

// Capacity returns the region capacity.
func (h Handle[H, T]) Capacity() int { return h.inner.Capacity() }

// Payload returns the active payload span.
func (h Handle[H, T]) Payload() []byte { return h.inner.Payload() }

// WritePayload copies p into the payload at off.
func (h Handle[H, T]) WritePayload(off int, p []byte) error {
	return h.inner.WritePayload(off, p)
}

// CopyPayloadFrom replaces the payload with p.
func (h Handle[H, T]) CopyPayloadFrom(p []byte) error {
	return h.inner.CopyPayloadFrom(p)
}

// mustNarrow faults on a declared-room violation.
func mustNarrow(op string, newRoom, oldRoom int) {
	if newRoom > oldRoom {
		panic(fmt.Sprintf("sized: %s widens declared room %d -> %d; fix the layer wiring", op, oldRoom, newRoom))
	}
}

// ShrinkHead narrows the declared headroom to NH. The underlying region is
// untouched; only the type changes.
func ShrinkHead[NH Room, H, T Room](h Handle[H, T]) Handle[NH, T] {
	mustNarrow("ShrinkHead", Bytes[NH](), Bytes[H]())
	return Handle[NH, T]{inner: h.inner}
}

// ShrinkTail narrows the declared tailroom to NT.
func ShrinkTail[NT Room, H, T Room](h Handle[H, T]) Handle[H, NT] {
	mustNarrow("ShrinkTail", Bytes[NT](), Bytes[T]())
	return Handle[H, NT]{inner: h.inner}
}

// Prepend writes header into the guaranteed headroom and narrows the
// declaration to NH. The wiring obligation NH <= H - len(header) is
// checked the same way as a shrink; the write itself cannot run out of
// room while the handle's guarantee holds.
func Prepend[NH Room, H, T Room](h Handle[H, T], header []byte) (Handle[NH, T], error) {
	mustNarrow("Prepend", Bytes[NH]()+len(header), Bytes[H]())
	if err := h.inner.Prepend(header); err != nil {
		return Handle[NH, T]{}, err
	}
	return Handle[NH, T]{inner: h.inner}, nil
}

// Append writes footer into the guaranteed tailroom and narrows the
// declaration to NT.
func Append[NT Room, H, T Room](h Handle[H, T], footer []byte) (Handle[H, NT], error) {
	mustNarrow("Append", Bytes[NT]()+len(footer), Bytes[T]())
	if err := h.inner.Append(footer); err != nil {
		return Handle[H, NT]{}, err
	}
	return Handle[H, NT]{inner: h.inner}, nil
}

// RestoreHead re-widens the declared headroom to NH without touching the
// region, provided the actual headroom covers it. Non-destructive; ok is
// false when the region does not actually have NH bytes free.
func RestoreHead[NH Room, H, T Room](h Handle[H, T]) (Handle[NH, T], bool) {
	if h.inner.Headroom() < Bytes[NH]() {
		return Handle[NH, T]{}, false
	}
	return Handle[NH, T]{inner: h.inner}, true
}

// RestoreTail is the tailroom counterpart of RestoreHead.
func RestoreTail[NT Room, H, T Room](h Handle[H, T]) (Handle[H, NT], bool) {
	if h.inner.Tailroom() < Bytes[NT]() {
		return Handle[H, NT]{}, false
	}
	return Handle[H, NT]{inner: h.inner}, true
}

// ReclaimHead force-moves the headroom mark to NH bytes, committing space
// the caller wrote directly through Payload or Raw. Existing payload bytes
// in the reclaimed span are ignored, not cleared.
func ReclaimHead[NH Room, H, T Room](h Handle[H, T]) (Handle[NH, T], bool) {
	if !h.inner.ReclaimHeadroom(Bytes[NH]()) {
		return Handle[NH, T]{}, false
	}
	return Handle[NH, T]{inner: h.inner}, true
}

// ReclaimTail is the tailroom counterpart of ReclaimHead.
func ReclaimTail[NT Room, H, T Room](h Handle[H, T]) (Handle[H, NT], bool) {
	if !h.inner.ReclaimTailroom(Bytes[NT]()) {
		return Handle[H, NT]{}, false
	}
	return Handle[H, NT]{inner: h.inner}, true
}

// Reset discards the payload and re-declares the rooms as NH/NT, the only
// way a declaration grows. Used when a fresh owner recycles the region.
// ok is false when NH+NT exceeds the region's capacity; the region is
// unmodified in that case.
func Reset[NH, NT Room, H, T Room](h Handle[H, T]) (Handle[NH, NT], bool) {
	if Bytes[NH]()+Bytes[NT]() > h.inner.Capacity() {
		return Handle[NH, NT]{}, false
	}
	if !h.inner.Reset(Bytes[NH]()) {
		return Handle[NH, NT]{}, false
	}
	return Handle[NH, NT]{inner: h.inner}, true
}
