package siteapi

import (
	"context"
	"sync/atomic"
	"time"

	"art-portfolio/internal/ratelimit"
	"art-portfolio/internal/storage"
)

const viewsKey = "views:portfolio"

// ViewCounter counts portfolio views in memory and persists the running
// total at most once per flush interval. Counts between the last persisted
// write and shutdown are saved by Flush.
type ViewCounter struct {
	store *storage.Store
	total atomic.Int64
	save  *ratelimit.Throttler[int64]
}

// NewViewCounter resumes from the stored total, if any.
func NewViewCounter(ctx context.Context, store *storage.Store, every time.Duration, sched ratelimit.Scheduler) *ViewCounter {
	v := &ViewCounter{store: store}
	v.total.Store(storage.Get(ctx, store, viewsKey, int64(0)))
	v.save = ratelimit.NewThrottler(func(n int64) {
		store.Set(context.Background(), viewsKey, n)
	}, every, sched)
	return v
}

// Hit records one view and returns the new total.
func (v *ViewCounter) Hit() int64 {
	if v == nil {
		return 0
	}
	n := v.total.Add(1)
	v.save.Call(n)
	return n
}

func (v *ViewCounter) Total() int64 {
	if v == nil {
		return 0
	}
	return v.total.Load()
}

// Flush writes the current total regardless of the throttle.
func (v *ViewCounter) Flush(ctx context.Context) error {
	if v == nil {
		return nil
	}
	return v.store.TrySet(ctx, viewsKey, v.total.Load())
}
