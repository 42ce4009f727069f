// File: loop/loop.go
// Package loop implements the cooperative completion dispatcher.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The buffer core's only suspension point is the gap between handing a
// region to a driver and getting it back through a completion event. Loop
// carries those deferred callbacks: drivers post closures from their
// "interrupt" context, and a single dispatching goroutine (or a caller
// using Drain) delivers them strictly in posting order. For one region,
// transfer always precedes completion, and no second completion can be
// delivered before the region is transferred again.

package loop

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eapache/queue"
	"go.uber.org/zap"
)

// Loop is a FIFO of deferred completion callbacks.
type Loop struct {
	mu sync.Mutex
	q  *queue.Queue

	stopCh   chan struct{}
	running  int32
	stopping int32
	stopped  int32

	backoffNs int64
	batchSize int
	log       *zap.Logger
}

// New creates a Loop. A nil logger disables logging.
func New(batchSize int, log *zap.Logger) *Loop {
	if batchSize <= 0 {
		batchSize = 16
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Loop{
		q:         queue.New(),
		stopCh:    make(chan struct{}),
		backoffNs: 1,
		batchSize: batchSize,
		log:       log,
	}
}

// Post enqueues fn for dispatch. Safe to call from any goroutine,
// including a driver's completion context. Never blocks.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.q.Add(fn)
	l.mu.Unlock()
}

// Pending reports the number of undelivered callbacks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	n := l.q.Length()
	l.mu.Unlock()
	return n
}

// Drain delivers every callback currently queued and returns the count.
// Callbacks posted during the drain (completion chains) are delivered
// too. Intended for single-threaded embeddings and tests.
func (l *Loop) Drain() int {
	total := 0
	for {
		fn := l.take()
		if fn == nil {
			return total
		}
		fn()
		total++
	}
}

func (l *Loop) take() func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.q.Length() == 0 {
		return nil
	}
	return l.q.Remove().(func())
}

// Run dispatches callbacks until Stop, with adaptive backoff while idle.
// Only one Run may be active per Loop.
func (l *Loop) Run() {
	if !atomic.CompareAndSwapInt32(&l.running, 0, 1) {
		return
	}
	l.log.Debug("loop: running")
	defer atomic.StoreInt32(&l.stopped, 1)
	for {
		select {
		case <-l.stopCh:
			l.log.Debug("loop: stopped", zap.Int("pending", l.Pending()))
			return
		default:
			if l.processBatch() == 0 {
				l.adaptiveBackoff()
			} else {
				atomic.StoreInt64(&l.backoffNs, 1)
			}
		}
	}
}

// Stop halts Run and waits for it to exit. Safe to call more than once.
// Pending callbacks stay queued and can still be flushed with Drain.
func (l *Loop) Stop() {
	if atomic.LoadInt32(&l.running) == 0 {
		return
	}
	if atomic.CompareAndSwapInt32(&l.stopping, 0, 1) {
		close(l.stopCh)
	}
	for atomic.LoadInt32(&l.stopped) == 0 {
		time.Sleep(time.Microsecond)
	}
}

func (l *Loop) processBatch() int {
	count := 0
	for i := 0; i < l.batchSize; i++ {
		fn := l.take()
		if fn == nil {
			break
		}
		fn()
		count++
	}
	return count
}

func (l *Loop) adaptiveBackoff() {
	select {
	case <-l.stopCh:
		return
	default:
	}
	backoff := atomic.LoadInt64(&l.backoffNs)
	if backoff < 1000 {
		time.Sleep(time.Microsecond)
	} else {
		runtime.Gosched()
	}
	next := backoff * 2
	if next > 1_000_000 {
		next = 1_000_000
	}
	atomic.StoreInt64(&l.backoffNs, next)
}
