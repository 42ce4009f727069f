// File: driver/loopback.go
// Package driver provides the software loopback transmitter.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Loopback models a single-descriptor peripheral: one transfer in flight,
// completion delivered asynchronously through the event loop. It is both
// the reference driver for examples and the bottom of the adapter test
// stack. When a receive side is wired, each transmitted payload is looped
// back upward into a region drawn from the receive pool; the copy across
// the "wire" is the explicit one.

package driver

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/momentics/zbuf/api"
	"github.com/momentics/zbuf/loop"
	"github.com/momentics/zbuf/pool"
)

// Loopback implements api.Transmitter over an event loop.
type Loopback struct {
	loop *loop.Loop
	log  *zap.Logger

	client api.TransmitClient
	rx     api.ReceiveClient
	rxPool *pool.RegionPool

	busy atomic.Bool
	sent atomic.Int64
}

// NewLoopback creates a loopback driver posting completions to l.
func NewLoopback(l *loop.Loop, log *zap.Logger) *Loopback {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loopback{loop: l, log: log}
}

// SetClient registers the completion client.
func (d *Loopback) SetClient(c api.TransmitClient) { d.client = c }

// SetReceiver wires the upward receive path. Receive regions are drawn
// from rxPool and recycled when the client returns a replacement.
func (d *Loopback) SetReceiver(rc api.ReceiveClient, rxPool *pool.RegionPool) {
	d.rx = rc
	d.rxPool = rxPool
}

// Sent reports the number of completed transmissions.
func (d *Loopback) Sent() int64 { return d.sent.Load() }

// Transmit takes ownership of r and schedules the completion. With a
// transfer already in flight it rejects synchronously and ownership stays
// with the caller.
func (d *Loopback) Transmit(r api.Region, tok api.Token) error {
	if d.client == nil {
		return api.NewError(api.ErrCodeInternal, "loopback: no completion client wired")
	}
	if !d.busy.CompareAndSwap(false, true) {
		return api.ErrDriverBusy
	}
	d.loop.Post(func() { d.complete(r, tok) })
	return nil
}

// complete runs in loop context, standing in for the interrupt bottom
// half.
func (d *Loopback) complete(r api.Region, tok api.Token) {
	d.deliverUp(r)
	d.busy.Store(false)
	d.sent.Add(1)
	d.client.TransmitDone(r, tok, nil)
}

func (d *Loopback) deliverUp(r api.Region) {
	if d.rx == nil || d.rxPool == nil {
		return
	}
	rxr, err := d.rxPool.Acquire(0)
	if err != nil {
		// Receive overrun: nothing free to fill, frame dropped.
		d.log.Warn("loopback: rx pool exhausted, dropping frame")
		return
	}
	if err := rxr.CopyPayloadFrom(r.Payload()); err != nil {
		d.log.Warn("loopback: rx region too small, dropping frame",
			zap.Int("payload", r.PayloadLen()), zap.Int("capacity", rxr.Capacity()))
		d.rxPool.Recycle(rxr)
		return
	}
	repl := d.rx.Receive(rxr, rxr.PayloadLen())
	if repl == nil {
		d.log.Warn("loopback: receive client returned no replacement, rx path stalls")
		return
	}
	d.rxPool.Recycle(repl)
}

var _ api.Transmitter = (*Loopback)(nil)
