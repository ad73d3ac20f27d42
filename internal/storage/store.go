// Package storage provides guarded read/write of JSON values under string
// keys. Public Set/Get never fail towards the caller; TrySet/TryGet expose
// the reason when something goes wrong.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"art-portfolio/internal/logger"
)

var (
	ErrUnavailable = errors.New("storage unavailable")
	ErrNotFound    = errors.New("key not found")
	ErrEncode      = errors.New("encode value")
	ErrDecode      = errors.New("decode value")
	ErrProvider    = errors.New("storage provider failed")
)

// Store serializes values to JSON and writes them through a Provider.
// A Store without provider behaves as an unavailable environment.
type Store struct {
	provider Provider
	log      *logger.Logger
}

func New(provider Provider, log *logger.Logger) *Store {
	return &Store{provider: provider, log: log}
}

// Available reports whether the store has somewhere to write.
func (s *Store) Available() bool {
	return s != nil && s.provider != nil
}

// TrySet encodes value and writes it under key.
func (s *Store) TrySet(ctx context.Context, key string, value any) error {
	if !s.Available() {
		return ErrUnavailable
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := s.provider.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("%w: %w", ErrProvider, err)
	}
	return nil
}

// Set is TrySet with the failure logged and dropped. Without a provider it
// does nothing.
func (s *Store) Set(ctx context.Context, key string, value any) {
	err := s.TrySet(ctx, key, value)
	if err == nil || errors.Is(err, ErrUnavailable) {
		return
	}
	s.log.WithFields(map[string]any{"key": key}).Error(err, "error saving to storage")
}

func (s *Store) raw(ctx context.Context, key string) (string, error) {
	if !s.Available() {
		return "", ErrUnavailable
	}
	v, ok, err := s.provider.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProvider, err)
	}
	if !ok || v == "" {
		return "", ErrNotFound
	}
	return v, nil
}

// TryGet reads and decodes the value under key into T.
func TryGet[T any](ctx context.Context, s *Store, key string) (T, error) {
	var out T
	raw, err := s.raw(ctx, key)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return out, nil
}

// Get returns the value under key, or def when the store is unavailable, the
// key is absent, or the stored text does not decode into T.
func Get[T any](ctx context.Context, s *Store, key string, def T) T {
	v, err := TryGet[T](ctx, s, key)
	if err == nil {
		return v
	}
	if !errors.Is(err, ErrUnavailable) && !errors.Is(err, ErrNotFound) {
		s.log.WithFields(map[string]any{"key": key}).Error(err, "error reading from storage")
	}
	return def
}
