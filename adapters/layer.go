// File: adapters/layer.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Per-boundary glue between a producer layer (larger room requirement)
// and a consumer layer (smaller requirement). On the transmit path a
// Layer stamps its own header/footer bytes into the reserved rooms and
// forwards the capability handle downward; on the completion path it
// forwards the handle back upward unchanged, leaving type recovery to the
// owning endpoint.

package adapters

import (
	"go.uber.org/zap"

	"github.com/momentics/zbuf/api"
)

// HeaderFunc computes the bytes a layer prepends (or appends) for one
// transmission. The region is inspected, not modified.
type HeaderFunc func(r api.Region, tok api.Token) []byte

// Layer is an intermediate protocol/driver boundary adapter. It is both a
// Transmitter (for the layer above) and a TransmitClient (for the layer
// below).
type Layer struct {
	name    string
	down    api.Transmitter
	up      api.TransmitClient
	header  HeaderFunc
	trailer HeaderFunc
	log     *zap.Logger
}

// NewLayer wires an adapter in front of the downward transmitter. Either
// header or trailer may be nil. The adapter registers itself as the
// downward transmitter's completion client.
func NewLayer(name string, down api.Transmitter, header, trailer HeaderFunc, log *zap.Logger) *Layer {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Layer{
		name:    name,
		down:    down,
		header:  header,
		trailer: trailer,
		log:     log,
	}
	down.SetClient(l)
	return l
}

// SetClient registers the upward completion client.
func (l *Layer) SetClient(c api.TransmitClient) { l.up = c }

// Transmit stamps the layer's bytes and forwards downward. A capacity
// failure surfaces to the caller with the region's zones unchanged and
// ownership retained by the caller.
func (l *Layer) Transmit(r api.Region, tok api.Token) error {
	var hdr, trl []byte
	if l.header != nil {
		hdr = l.header(r, tok)
	}
	if l.trailer != nil {
		trl = l.trailer(r, tok)
	}
	// Both stamps are validated before either write so a late failure
	// cannot leave a half-stamped region behind.
	if len(hdr) > r.Headroom() {
		return api.ErrInsufficientHeadroom
	}
	if len(trl) > r.Tailroom() {
		return api.ErrInsufficientTailroom
	}
	if err := r.Prepend(hdr); err != nil {
		return err
	}
	if err := r.Append(trl); err != nil {
		return err
	}
	l.log.Debug("layer: transmit",
		zap.String("layer", l.name),
		zap.Uint32("token", uint32(tok)),
		zap.Int("payload", r.PayloadLen()))
	return l.down.Transmit(r, tok)
}

// TransmitDone forwards the completion upward. Ownership moves with the
// call; the adapter itself never retains the region.
func (l *Layer) TransmitDone(r api.Region, tok api.Token, err error) {
	if l.up == nil {
		l.log.Warn("layer: completion with no upward client",
			zap.String("layer", l.name), zap.Uint32("token", uint32(tok)))
		return
	}
	l.up.TransmitDone(r, tok, err)
}

var (
	_ api.Transmitter    = (*Layer)(nil)
	_ api.TransmitClient = (*Layer)(nil)
)
