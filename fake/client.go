// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake upward clients recording completions and received frames.

package fake

import (
	"sync"

	"github.com/momentics/zbuf/api"
)

// Completion records one TransmitDone delivery.
type Completion struct {
	Region api.Region
	Token  api.Token
	Err    error
}

// Client is a fake implementation of api.TransmitClient.
type Client struct {
	mu          sync.Mutex
	completions []Completion
}

// NewClient creates a fake completion client.
func NewClient() *Client {
	return &Client{}
}

// TransmitDone records the completion.
func (c *Client) TransmitDone(r api.Region, tok api.Token, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.completions = append(c.completions, Completion{Region: r, Token: tok, Err: err})
}

// Completions returns the recorded completions.
func (c *Client) Completions() []Completion {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Completion, len(c.completions))
	copy(out, c.completions)
	return out
}

// Received records one Receive delivery.
type Received struct {
	Payload []byte
	Len     int
}

// Receiver is a fake implementation of api.ReceiveClient. Each received
// region is copied out and handed straight back as the replacement.
type Receiver struct {
	mu     sync.Mutex
	frames []Received
	stall  bool
}

// NewReceiver creates a fake receive client.
func NewReceiver() *Receiver {
	return &Receiver{}
}

// SetStall makes Receive keep the region and return nil.
func (r *Receiver) SetStall(stall bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stall = stall
}

// Receive copies the payload out and returns the same region as the
// replacement, or nil when stalling.
func (r *Receiver) Receive(reg api.Region, n int) api.Region {
	r.mu.Lock()
	defer r.mu.Unlock()
	payload := make([]byte, n)
	copy(payload, reg.Payload())
	r.frames = append(r.frames, Received{Payload: payload, Len: n})
	if r.stall {
		return nil
	}
	return reg
}

// Frames returns the recorded frames.
func (r *Receiver) Frames() []Received {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Received, len(r.frames))
	copy(out, r.frames)
	return out
}

var (
	_ api.TransmitClient = (*Client)(nil)
	_ api.ReceiveClient  = (*Receiver)(nil)
)
