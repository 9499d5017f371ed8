// Package flow provides the rate-limiting primitives used by the client-side
// fetch logic: a trailing-edge debouncer, a minimum-interval throttle and a
// monotonic sequence guard for last-request-wins response handling.
package flow

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Debouncer delays a function call until the input has settled for the
// configured duration. A newer call replaces a pending one; cancellation is a
// first-class operation.
type Debouncer struct {
	mu    sync.Mutex
	d     time.Duration
	timer *time.Timer
}

func NewDebouncer(d time.Duration) *Debouncer {
	return &Debouncer{d: d}
}

// Do schedules fn to run after the debounce interval, replacing any pending
// call that has not fired yet.
func (b *Debouncer) Do(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.d, fn)
}

// Cancel drops the pending call, if any.
func (b *Debouncer) Cancel() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

// Throttle enforces a minimum interval between permitted attempts.
type Throttle struct {
	limiter *rate.Limiter
}

func NewThrottle(minInterval time.Duration) *Throttle {
	return &Throttle{
		limiter: rate.NewLimiter(rate.Every(minInterval), 1),
	}
}

// Allow reports whether an attempt may proceed now.
func (t *Throttle) Allow() bool {
	return t.limiter.Allow()
}

// Wait blocks until an attempt may proceed or ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

// Sequencer issues monotonically increasing request sequence numbers. A
// response is current only if its sequence is still the latest issued;
// superseded responses are discarded rather than cancelled on the wire.
type Sequencer struct {
	latest atomic.Uint64
}

func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Next reserves the next sequence number.
func (s *Sequencer) Next() uint64 {
	return s.latest.Add(1)
}

// Current reports whether seq is still the newest issued sequence.
func (s *Sequencer) Current(seq uint64) bool {
	return s.latest.Load() == seq
}
