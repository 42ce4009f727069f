// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake driver-side implementations for testing layer wiring without an
// event loop: transmissions are captured and completed by hand.

package fake

import (
	"sync"

	"github.com/momentics/zbuf/api"
)

// Transmission records one captured Transmit call.
type Transmission struct {
	Region api.Region
	Token  api.Token
}

// Transmitter is a fake implementation of api.Transmitter.
type Transmitter struct {
	mu      sync.Mutex
	client  api.TransmitClient
	pending []Transmission
	busy    bool
}

// NewTransmitter creates a fake transmitter.
func NewTransmitter() *Transmitter {
	return &Transmitter{}
}

// SetBusy makes the next Transmit calls fail with ErrDriverBusy.
func (t *Transmitter) SetBusy(busy bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.busy = busy
}

// SetClient registers the completion client.
func (t *Transmitter) SetClient(c api.TransmitClient) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.client = c
}

// Transmit captures the region, taking ownership until Complete.
func (t *Transmitter) Transmit(r api.Region, tok api.Token) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.busy {
		return api.ErrDriverBusy
	}
	t.pending = append(t.pending, Transmission{Region: r, Token: tok})
	return nil
}

// Pending returns the captured, uncompleted transmissions.
func (t *Transmitter) Pending() []Transmission {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Transmission, len(t.pending))
	copy(out, t.pending)
	return out
}

// Complete delivers the completion for the oldest captured transmission,
// optionally substituting a different region to provoke recovery faults.
func (t *Transmitter) Complete(err error, substitute api.Region) bool {
	t.mu.Lock()
	if len(t.pending) == 0 || t.client == nil {
		t.mu.Unlock()
		return false
	}
	tx := t.pending[0]
	t.pending = t.pending[1:]
	client := t.client
	t.mu.Unlock()

	r := tx.Region
	if substitute != nil {
		r = substitute
	}
	client.TransmitDone(r, tx.Token, err)
	return true
}

// CompleteAll completes every captured transmission in order.
func (t *Transmitter) CompleteAll(err error) int {
	n := 0
	for t.Complete(err, nil) {
		n++
	}
	return n
}

var _ api.Transmitter = (*Transmitter)(nil)
