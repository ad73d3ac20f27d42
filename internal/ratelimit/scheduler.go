// Package ratelimit provides debounce and throttle wrappers. Each wrapper is
// a small object owning its own timer handle or last-fired timestamp; the
// clock and timers come from an injected Scheduler.
package ratelimit

import "time"

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	// Stop cancels the callback and reports whether it was still pending.
	Stop() bool
}

// Scheduler supplies the current time and one-shot timers.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemScheduler is backed by package time. Callbacks run on their own
// goroutine.
type SystemScheduler struct{}

func (SystemScheduler) Now() time.Time { return time.Now() }

func (SystemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func orSystem(s Scheduler) Scheduler {
	if s == nil {
		return SystemScheduler{}
	}
	return s
}
