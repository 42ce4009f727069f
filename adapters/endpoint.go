// File: adapters/endpoint.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Endpoint is the top-of-stack adapter owned by the layer that allocates
// and recycles regions. It erases the sized handle on the way down and
// recovers the concrete region type when the completion comes back up.

package adapters

import (
	"go.uber.org/zap"

	"github.com/momentics/zbuf/api"
	"github.com/momentics/zbuf/bridge"
	"github.com/momentics/zbuf/sized"
)

// DoneFunc receives the recovered concrete region when a transmission
// completes. Ownership returns to the callee, which typically resets and
// recycles the region.
type DoneFunc[C api.Region] func(r C, tok api.Token, err error)

// Endpoint couples a producer's concrete region type C and its declared
// rooms H/T to a downward transmitter.
type Endpoint[C api.Region, H, T sized.Room] struct {
	name string
	down api.Transmitter
	done DoneFunc[C]
	log  *zap.Logger
}

// NewEndpoint wires the endpoint as the downward transmitter's completion
// client.
func NewEndpoint[C api.Region, H, T sized.Room](name string, down api.Transmitter, done DoneFunc[C], log *zap.Logger) *Endpoint[C, H, T] {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Endpoint[C, H, T]{name: name, down: down, done: done, log: log}
	down.SetClient(e)
	return e
}

// Transmit erases the sized handle and hands ownership downward.
func (e *Endpoint[C, H, T]) Transmit(h sized.Handle[H, T], tok api.Token) error {
	return e.down.Transmit(bridge.Erase(h), tok)
}

// TransmitDone recovers the original concrete type and returns ownership
// to the producer. A recovery failure means the lower layers routed a
// wrong buffer here, which is a protocol violation and fatal.
func (e *Endpoint[C, H, T]) TransmitDone(r api.Region, tok api.Token, err error) {
	c := bridge.MustRecover[C](r)
	e.log.Debug("endpoint: completion",
		zap.String("endpoint", e.name),
		zap.Uint32("token", uint32(tok)),
		zap.Error(err))
	e.done(c, tok, err)
}

var _ api.TransmitClient = (*Endpoint[api.Region, sized.R0, sized.R0])(nil)
