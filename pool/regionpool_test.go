package pool_test

import (
	"testing"

	"github.com/momentics/zbuf/api"
	"github.com/momentics/zbuf/pool"
	"github.com/momentics/zbuf/region"
)

func newPopulation(t *testing.T, count int) []api.Region {
	t.Helper()
	regions := make([]api.Region, count)
	for i := range regions {
		r, err := region.NewOwned(64, 16)
		if err != nil {
			t.Fatalf("NewOwned: %v", err)
		}
		regions[i] = r
	}
	return regions
}

func TestPoolReuse(t *testing.T) {
	p := pool.NewRegionPool(newPopulation(t, 1)...)

	r1, err := p.Acquire(8)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if r1.Headroom() != 8 || r1.PayloadLen() != 0 {
		t.Errorf("acquired region not reset: headroom=%d payload=%d", r1.Headroom(), r1.PayloadLen())
	}
	if err := r1.CopyPayloadFrom([]byte("dirty")); err != nil {
		t.Fatalf("CopyPayloadFrom: %v", err)
	}
	p.Recycle(r1)

	r2, err := p.Acquire(16)
	if err != nil {
		t.Fatalf("Acquire after recycle: %v", err)
	}
	if r2 != r1 {
		t.Error("pool did not reuse the registered region")
	}
	if r2.PayloadLen() != 0 || r2.Headroom() != 16 {
		t.Errorf("recycled region not reset: headroom=%d payload=%d", r2.Headroom(), r2.PayloadLen())
	}
}

func TestPoolExhaustion(t *testing.T) {
	p := pool.NewRegionPool(newPopulation(t, 2)...)

	if _, err := p.Acquire(0); err != nil {
		t.Fatalf("Acquire 1: %v", err)
	}
	if _, err := p.Acquire(0); err != nil {
		t.Fatalf("Acquire 2: %v", err)
	}
	if _, err := p.Acquire(0); err != api.ErrPoolExhausted {
		t.Errorf("expected ErrPoolExhausted, got %v", err)
	}
}

func TestPoolRejectsOversizedHeadroom(t *testing.T) {
	p := pool.NewRegionPool(newPopulation(t, 1)...)

	if _, err := p.Acquire(65); err != api.ErrInsufficientHeadroom {
		t.Fatalf("expected ErrInsufficientHeadroom, got %v", err)
	}
	// The region must still be available.
	if _, err := p.Acquire(32); err != nil {
		t.Errorf("region lost after rejected acquire: %v", err)
	}
}

func TestPoolStats(t *testing.T) {
	p := pool.NewRegionPool(newPopulation(t, 3)...)

	r, _ := p.Acquire(0)
	if _, err := p.Acquire(0); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	p.Recycle(r)

	s := p.Stats()
	if s.Registered != 3 || s.TotalAcquired != 2 || s.TotalRecycled != 1 || s.InUse != 1 {
		t.Errorf("unexpected stats: %+v", s)
	}
}
