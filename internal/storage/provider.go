package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrFull is returned by a bounded MemoryProvider asked to store a new key
// once it holds its maximum. Existing keys can still be overwritten.
var ErrFull = errors.New("storage is full")

// Provider is the key/value capability the Store writes through. Get reports
// ok=false for an absent key. Implementations must be safe for concurrent use.
type Provider interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// MemoryProvider keeps values in process memory. Used when no database is
// configured and in tests.
type MemoryProvider struct {
	mu      sync.RWMutex
	values  map[string]string
	maxKeys int
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{values: make(map[string]string)}
}

// NewBoundedMemoryProvider holds at most maxKeys keys. maxKeys <= 0 means
// unbounded.
func NewBoundedMemoryProvider(maxKeys int) *MemoryProvider {
	m := NewMemoryProvider()
	m.maxKeys = maxKeys
	return m
}

func (m *MemoryProvider) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryProvider) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.values[key]; !exists && m.maxKeys > 0 && len(m.values) >= m.maxKeys {
		return ErrFull
	}
	m.values[key] = value
	return nil
}

// Len returns the number of stored keys.
func (m *MemoryProvider) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}

// NoopProvider stands in for an environment without storage: nothing is
// ever found and writes vanish.
type NoopProvider struct{}

func (NoopProvider) Get(context.Context, string) (string, bool, error) { return "", false, nil }

func (NoopProvider) Set(context.Context, string, string) error { return nil }

var (
	_ Provider = (*MemoryProvider)(nil)
	_ Provider = NoopProvider{}
	_ Provider = (*GormProvider)(nil)
)
