package ratelimit

import (
	"sync"
	"time"
)

// Debouncer delays fn until wait has passed without another Call. Only the
// last call of a burst runs, once, with that call's argument.
type Debouncer[A any] struct {
	fn    func(A)
	wait  time.Duration
	sched Scheduler

	mu      sync.Mutex
	timer   Timer
	gen     uint64
	pending bool
	args    A
}

// NewDebouncer wraps fn. A nil scheduler means SystemScheduler.
func NewDebouncer[A any](fn func(A), wait time.Duration, sched Scheduler) *Debouncer[A] {
	return &Debouncer[A]{fn: fn, wait: wait, sched: orSystem(sched)}
}

// Call cancels any pending run and schedules a new one with a.
func (d *Debouncer[A]) Call(a A) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.args = a
	d.pending = true
	d.timer = d.sched.AfterFunc(d.wait, func() { d.fire(gen) })
}

// fire runs fn unless the timer was superseded after it had already started.
func (d *Debouncer[A]) fire(gen uint64) {
	d.mu.Lock()
	args, ok := d.takeLocked(gen)
	d.mu.Unlock()

	if ok {
		d.fn(args)
	}
}

func (d *Debouncer[A]) takeLocked(gen uint64) (A, bool) {
	var zero A
	if !d.pending || gen != d.gen {
		return zero, false
	}
	args := d.args
	d.args = zero
	d.pending = false
	d.timer = nil
	return args, true
}

// Flush runs a pending call immediately and reports whether there was one.
func (d *Debouncer[A]) Flush() bool {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	args, ok := d.takeLocked(d.gen)
	d.mu.Unlock()

	if ok {
		d.fn(args)
	}
	return ok
}

// Stop drops a pending call without running it.
func (d *Debouncer[A]) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	was := d.pending
	d.pending = false
	d.gen++
	var zero A
	d.args = zero
	return was
}

// Pending reports whether a call is waiting to run.
func (d *Debouncer[A]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Debounce returns a debounced fn on the system clock.
func Debounce[A any](fn func(A), wait time.Duration) func(A) {
	return NewDebouncer(fn, wait, nil).Call
}
