// File: pool/regionpool.go
// Package pool implements fixed-population region recycling.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Regions are constructed once at board initialization and reused for the
// life of the system: filled, sent down the stack, consumed by hardware,
// returned, reset and recycled. The pool never allocates; exhaustion is a
// local error the caller handles.

package pool

import (
	"sync/atomic"

	"github.com/momentics/zbuf/api"
)

// Stats aggregates acquisition/recycling accounting for observability.
type Stats struct {
	Registered    int64
	InUse         int64
	TotalAcquired int64
	TotalRecycled int64
}

// RegionPool holds a fixed set of regions registered at init.
type RegionPool struct {
	free chan api.Region

	registered int64
	acquired   atomic.Int64
	recycled   atomic.Int64
}

// NewRegionPool registers the regions as the pool's entire population.
// Called once during board wiring; the population never grows.
func NewRegionPool(regions ...api.Region) *RegionPool {
	p := &RegionPool{
		free:       make(chan api.Region, len(regions)),
		registered: int64(len(regions)),
	}
	for _, r := range regions {
		p.free <- r
	}
	return p
}

// Acquire hands out a free region reset to the given headroom, making the
// caller its sole owner. Fails with ErrPoolExhausted when every region is
// out, and with ErrInsufficientHeadroom when the region cannot satisfy
// the requested headroom (the region stays pooled).
func (p *RegionPool) Acquire(headroom int) (api.Region, error) {
	select {
	case r := <-p.free:
		if !r.Reset(headroom) {
			p.free <- r
			return nil, api.ErrInsufficientHeadroom
		}
		p.acquired.Add(1)
		return r, nil
	default:
		return nil, api.ErrPoolExhausted
	}
}

// Recycle returns a region to the pool. The caller must be the sole owner
// and must not touch the region afterwards.
func (p *RegionPool) Recycle(r api.Region) {
	if r == nil {
		return
	}
	select {
	case p.free <- r:
		p.recycled.Add(1)
	default:
		// More recycles than registered regions is an ownership bug;
		// dropping here keeps the population bounded.
	}
}

// Stats exposes resource accounting.
func (p *RegionPool) Stats() Stats {
	acq := p.acquired.Load()
	rec := p.recycled.Load()
	return Stats{
		Registered:    p.registered,
		InUse:         acq - rec,
		TotalAcquired: acq,
		TotalRecycled: rec,
	}
}
