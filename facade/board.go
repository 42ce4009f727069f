// File: facade/board.go
// Unified board-wiring facade for the zbuf library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Board struct, which aggregates the core components
// behind a single facade. At construction it reserves backing storage,
// wraps it into packed-slice regions, registers the transmit and receive
// pools, and wires the event loop and loopback driver from immutable
// configuration. Protocol layering on top of the driver stays with the
// caller: adapters are wired per deployment, not here.

package facade

import (
	"go.uber.org/zap"

	"github.com/momentics/zbuf/api"
	"github.com/momentics/zbuf/driver"
	"github.com/momentics/zbuf/loop"
	"github.com/momentics/zbuf/mem"
	"github.com/momentics/zbuf/pool"
	"github.com/momentics/zbuf/region"
)

// Config holds parameters immutable per run.
type Config struct {
	RegionCapacity int // Usable bytes per region, metadata excluded
	TxRegions      int // Transmit pool population
	RxRegions      int // Receive pool population (0 disables the rx path)
	Headroom       int // Initial headroom regions are acquired with
	LoopBatch      int // Completion events per dispatch batch
	Logger         *zap.Logger
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		RegionCapacity: 1536, // one full Ethernet frame plus slack
		TxRegions:      8,
		RxRegions:      8,
		Headroom:       64,
		LoopBatch:      16,
		Logger:         zap.NewNop(),
	}
}

// Board aggregates the wired components.
type Board struct {
	txPool *pool.RegionPool
	rxPool *pool.RegionPool
	loop   *loop.Loop
	drv    *driver.Loopback
	log    *zap.Logger
}

// New reserves all backing storage and wires the components. Everything
// allocated here lives as long as the process; nothing is reserved after
// New returns.
func New(cfg *Config) (*Board, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	l := loop.New(cfg.LoopBatch, log)
	drv := driver.NewLoopback(l, log)

	txPool, err := newPool(cfg.TxRegions, cfg.RegionCapacity, cfg.Headroom)
	if err != nil {
		return nil, err
	}
	rxPool, err := newPool(cfg.RxRegions, cfg.RegionCapacity, 0)
	if err != nil {
		return nil, err
	}

	log.Info("board wired",
		zap.Int("tx_regions", cfg.TxRegions),
		zap.Int("rx_regions", cfg.RxRegions),
		zap.Int("region_capacity", cfg.RegionCapacity))

	return &Board{
		txPool: txPool,
		rxPool: rxPool,
		loop:   l,
		drv:    drv,
		log:    log,
	}, nil
}

func newPool(count, capacity, headroom int) (*pool.RegionPool, error) {
	regions := make([]api.Region, 0, count)
	for i := 0; i < count; i++ {
		span := mem.Reserve(capacity + region.HeaderBytes)
		r, err := region.WrapSlice(span, headroom)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	return pool.NewRegionPool(regions...), nil
}

// TxPool returns the transmit region pool.
func (b *Board) TxPool() *pool.RegionPool { return b.txPool }

// RxPool returns the receive region pool.
func (b *Board) RxPool() *pool.RegionPool { return b.rxPool }

// Loop returns the completion dispatcher.
func (b *Board) Loop() *loop.Loop { return b.loop }

// Driver returns the loopback driver.
func (b *Board) Driver() *driver.Loopback { return b.drv }

// AttachReceiver wires the upward receive path through the rx pool.
func (b *Board) AttachReceiver(rc api.ReceiveClient) {
	b.drv.SetReceiver(rc, b.rxPool)
}

// Start runs the completion dispatcher on its own goroutine.
func (b *Board) Start() {
	go b.loop.Run()
}

// Stop halts the dispatcher and flushes pending completions.
func (b *Board) Stop() {
	b.loop.Stop()
	if n := b.loop.Drain(); n > 0 {
		b.log.Debug("flushed pending completions on stop", zap.Int("count", n))
	}
}
