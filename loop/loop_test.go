package loop_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/momentics/zbuf/loop"
)

func TestDrainDeliversInPostingOrder(t *testing.T) {
	l := loop.New(4, nil)

	var order []int
	for i := 0; i < 10; i++ {
		i := i
		l.Post(func() { order = append(order, i) })
	}
	assert.Equal(t, 10, l.Pending())

	n := l.Drain()
	assert.Equal(t, 10, n)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
	assert.Equal(t, 0, l.Pending())
}

func TestDrainFollowsCompletionChains(t *testing.T) {
	l := loop.New(4, nil)

	var hits int
	l.Post(func() {
		hits++
		l.Post(func() { hits++ })
	})

	assert.Equal(t, 2, l.Drain())
	assert.Equal(t, 2, hits)
}

func TestPostNilIsIgnored(t *testing.T) {
	l := loop.New(4, nil)
	l.Post(nil)
	assert.Equal(t, 0, l.Pending())
}

func TestRunStopDelivery(t *testing.T) {
	l := loop.New(8, nil)
	go l.Run()

	var delivered atomic.Int64
	for i := 0; i < 100; i++ {
		l.Post(func() { delivered.Add(1) })
	}

	deadline := time.Now().Add(2 * time.Second)
	for delivered.Load() < 100 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	l.Stop()
	assert.Equal(t, int64(100), delivered.Load())
}

func TestStopIsIdempotent(t *testing.T) {
	l := loop.New(8, nil)
	go l.Run()
	time.Sleep(time.Millisecond)

	l.Stop()
	assert.NotPanics(t, func() { l.Stop() })
}

func TestStopWithoutRunIsHarmless(t *testing.T) {
	l := loop.New(8, nil)
	assert.NotPanics(t, func() { l.Stop() })
}
