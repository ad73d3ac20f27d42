package ratelimit

import (
	"sync"
	"time"
)

// KeyedThrottler applies a separate Throttler-style cooldown to every key,
// typically one per client. Keys whose cooldown has passed are forgotten on
// the next sweep, so memory follows the number of recent callers only.
type KeyedThrottler struct {
	limit time.Duration
	sched Scheduler

	mu      sync.Mutex
	last    map[string]time.Time
	sweptAt time.Time
}

// NewKeyedThrottler allows one call per key per limit. A limit <= 0 allows
// everything. A nil scheduler means SystemScheduler.
func NewKeyedThrottler(limit time.Duration, sched Scheduler) *KeyedThrottler {
	return &KeyedThrottler{limit: limit, sched: orSystem(sched), last: make(map[string]time.Time)}
}

// Allow reports whether key is outside its cooldown, and starts a new
// cooldown when it is. Dropped calls do not extend the cooldown.
func (k *KeyedThrottler) Allow(key string) bool {
	if k.limit <= 0 {
		return true
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.sched.Now()
	if now.Sub(k.sweptAt) >= k.limit {
		for key, at := range k.last {
			if now.Sub(at) >= k.limit {
				delete(k.last, key)
			}
		}
		k.sweptAt = now
	}

	if at, ok := k.last[key]; ok && now.Sub(at) < k.limit {
		return false
	}
	k.last[key] = now
	return true
}

// Limit is the cooldown per key.
func (k *KeyedThrottler) Limit() time.Duration {
	return k.limit
}

// Len returns the number of keys currently tracked.
func (k *KeyedThrottler) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.last)
}
