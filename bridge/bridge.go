// File: bridge/bridge.go
// Package bridge converts sized handles to capability handles and back.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A dispatch table shared by many protocol instances cannot be generic
// over every producer's room parameters. Erase drops the markers, leaving
// the bare capability contract; Recover re-types the handle on the way
// back up, verified against the dynamic type identity of the original
// concrete region. A mismatch yields "no match", never a reinterpreted
// region.

package bridge

import (
	"fmt"

	"github.com/momentics/zbuf/api"
	"github.com/momentics/zbuf/sized"
)

// Erase discards the compile-time room markers, yielding a capability
// handle for passage through a layer that only knows the contract. The
// region itself is untouched; erasure is a type-level move.
func Erase[H, T sized.Room](h sized.Handle[H, T]) api.Region {
	return h.Inner()
}

// Recover re-types a capability handle as the concrete region type C,
// verified by type identity. ok is false on mismatch.
func Recover[C api.Region](r api.Region) (C, bool) {
	c, ok := r.(C)
	return c, ok
}

// MustRecover is Recover for completion paths, where a mismatch means the
// driver handed back somebody else's buffer. No sound way to continue
// exists without the correct concrete type, so the violation is fatal.
func MustRecover[C api.Region](r api.Region) C {
	c, ok := r.(C)
	if !ok {
		panic(api.NewError(api.ErrCodeTypeMismatch, "bridge: completion returned a foreign region").
			WithContext("got", fmt.Sprintf("%T", r)))
	}
	return c
}

// RecoverSized recovers both the concrete type and the room declarations:
// the handle must carry a C, and the region's actual rooms must still
// cover NH/NT. ok is false on either failure.
func RecoverSized[C api.Region, NH, NT sized.Room](r api.Region) (sized.Handle[NH, NT], bool) {
	if _, ok := r.(C); !ok {
		return sized.Handle[NH, NT]{}, false
	}
	return sized.New[NH, NT](r)
}
