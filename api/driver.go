// File: api/driver.go
// Package api defines the driver boundary contracts.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Protocol layers talk to hardware drivers through Transmitter and get the
// buffer back through TransmitClient. Drivers deliver inbound traffic
// upward through ReceiveClient. Ownership of the region moves with every
// call: after Transmit returns nil the caller no longer owns the region
// until TransmitDone hands it back.

package api

// Token is an opaque correlation value carried alongside a region through
// a transmit/completion pair. Layers use it to match a completion to the
// original request without inspecting buffer contents.
type Token uint32

// Transmitter is implemented by hardware drivers and by layer adapters
// that forward downward.
type Transmitter interface {
	// Transmit takes ownership of r and starts an asynchronous send.
	// It never blocks: it either accepts the region and returns nil, or
	// rejects it synchronously (ErrDriverBusy) leaving ownership with
	// the caller.
	Transmit(r Region, tok Token) error

	// SetClient registers the layer that receives completions.
	SetClient(c TransmitClient)
}

// TransmitClient receives transmit completions, dispatched from the event
// loop. The region handed back is the same region passed to Transmit;
// ownership returns to the client with the call.
type TransmitClient interface {
	TransmitDone(r Region, tok Token, err error)
}

// ReceiveClient is the upward receive boundary. The driver delivers a
// freshly filled region holding n payload bytes. The client must consume
// the region and return a replacement (commonly the same region after
// Reset); returning nil stalls the driver's receive path, a policy the
// driver owns.
type ReceiveClient interface {
	Receive(r Region, n int) Region
}
