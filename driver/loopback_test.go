package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/zbuf/api"
	"github.com/momentics/zbuf/driver"
	"github.com/momentics/zbuf/fake"
	"github.com/momentics/zbuf/loop"
	"github.com/momentics/zbuf/pool"
	"github.com/momentics/zbuf/region"
)

func newTxRegion(t *testing.T, payload string) *region.Owned {
	t.Helper()
	r, err := region.NewOwned(64, 16)
	require.NoError(t, err)
	require.NoError(t, r.CopyPayloadFrom([]byte(payload)))
	return r
}

func TestTransmitRequiresClient(t *testing.T) {
	d := driver.NewLoopback(loop.New(0, nil), nil)
	err := d.Transmit(newTxRegion(t, "x"), 1)
	assert.Error(t, err)
}

func TestTransmitCompletesThroughLoop(t *testing.T) {
	l := loop.New(0, nil)
	d := driver.NewLoopback(l, nil)
	client := fake.NewClient()
	d.SetClient(client)

	r := newTxRegion(t, "frame")
	require.NoError(t, d.Transmit(r, 42))
	assert.Empty(t, client.Completions(), "completion must be deferred, not synchronous")

	l.Drain()
	comps := client.Completions()
	require.Len(t, comps, 1)
	assert.Same(t, r, comps[0].Region.(*region.Owned))
	assert.Equal(t, api.Token(42), comps[0].Token)
	assert.NoError(t, comps[0].Err)
	assert.Equal(t, int64(1), d.Sent())
}

func TestSecondTransmitWhileInFlightIsBusy(t *testing.T) {
	l := loop.New(0, nil)
	d := driver.NewLoopback(l, nil)
	d.SetClient(fake.NewClient())

	require.NoError(t, d.Transmit(newTxRegion(t, "a"), 1))
	assert.ErrorIs(t, d.Transmit(newTxRegion(t, "b"), 2), api.ErrDriverBusy)

	l.Drain()
	assert.NoError(t, d.Transmit(newTxRegion(t, "b"), 2))
}

func TestLoopbackDeliversUpward(t *testing.T) {
	l := loop.New(0, nil)
	d := driver.NewLoopback(l, nil)
	d.SetClient(fake.NewClient())

	rxRegion, err := region.NewOwned(64, 0)
	require.NoError(t, err)
	rxPool := pool.NewRegionPool(rxRegion)
	rx := fake.NewReceiver()
	d.SetReceiver(rx, rxPool)

	require.NoError(t, d.Transmit(newTxRegion(t, "looped"), 5))
	l.Drain()

	frames := rx.Frames()
	require.Len(t, frames, 1)
	assert.Equal(t, []byte("looped"), frames[0].Payload)

	// The receiver returned a replacement, so the rx pool is whole again.
	s := rxPool.Stats()
	assert.Equal(t, int64(0), s.InUse)
}

func TestLoopbackDropsOnRxExhaustion(t *testing.T) {
	l := loop.New(0, nil)
	d := driver.NewLoopback(l, nil)
	client := fake.NewClient()
	d.SetClient(client)

	rx := fake.NewReceiver()
	d.SetReceiver(rx, pool.NewRegionPool()) // empty population

	require.NoError(t, d.Transmit(newTxRegion(t, "dropped"), 9))
	l.Drain()

	assert.Empty(t, rx.Frames(), "no rx region free, frame must drop")
	assert.Len(t, client.Completions(), 1, "transmit side still completes")
}

func TestLoopbackStallOnNilReplacement(t *testing.T) {
	l := loop.New(0, nil)
	d := driver.NewLoopback(l, nil)
	d.SetClient(fake.NewClient())

	rxRegion, err := region.NewOwned(64, 0)
	require.NoError(t, err)
	rxPool := pool.NewRegionPool(rxRegion)
	rx := fake.NewReceiver()
	rx.SetStall(true)
	d.SetReceiver(rx, rxPool)

	require.NoError(t, d.Transmit(newTxRegion(t, "one"), 1))
	l.Drain()
	require.NoError(t, d.Transmit(newTxRegion(t, "two"), 2))
	l.Drain()

	// The stalled client kept the only rx region: second frame dropped.
	assert.Len(t, rx.Frames(), 1)
	assert.Equal(t, int64(1), rxPool.Stats().InUse)
}
