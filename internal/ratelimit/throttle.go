package ratelimit

import (
	"sync"
	"time"
)

// Throttler runs fn at most once per limit. The first call runs immediately;
// calls inside the cooldown are dropped, not queued.
type Throttler[A any] struct {
	fn    func(A)
	limit time.Duration
	sched Scheduler

	mu    sync.Mutex
	fired bool
	last  time.Time
}

// NewThrottler wraps fn. A nil scheduler means SystemScheduler.
func NewThrottler[A any](fn func(A), limit time.Duration, sched Scheduler) *Throttler[A] {
	return &Throttler[A]{fn: fn, limit: limit, sched: orSystem(sched)}
}

// Call runs fn(a) if the cooldown has elapsed and reports whether it ran.
func (t *Throttler[A]) Call(a A) bool {
	t.mu.Lock()
	now := t.sched.Now()
	if t.fired && now.Sub(t.last) < t.limit {
		t.mu.Unlock()
		return false
	}
	t.fired = true
	t.last = now
	t.mu.Unlock()

	t.fn(a)
	return true
}

// Reset ends the current cooldown so the next Call runs.
func (t *Throttler[A]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fired = false
	t.last = time.Time{}
}

// Throttle returns a throttled fn on the system clock.
func Throttle[A any](fn func(A), limit time.Duration) func(A) {
	t := NewThrottler(fn, limit, nil)
	return func(a A) { t.Call(a) }
}
