package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"art-portfolio/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viewPrefs struct {
	Theme string `json:"theme"`
	Asc   bool   `json:"asc"`
}

type failingProvider struct{ err error }

func (f failingProvider) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingProvider) Set(context.Context, string, string) error        { return f.err }

func newTestStore(t *testing.T, p Provider) (*Store, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)
	return New(p, log), buf
}

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, _ := newTestStore(t, NewMemoryProvider())
	s.Set(ctx, "view", viewPrefs{Theme: "dark", Asc: true})

	got := Get(ctx, s, "view", viewPrefs{Theme: "light"})
	assert.Equal(t, viewPrefs{Theme: "dark", Asc: true}, got)

	n, err := TryGet[viewPrefs](ctx, s, "view")
	require.NoError(t, err)
	assert.Equal(t, "dark", n.Theme)
}

func TestGetMissingKeyReturnsDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, buf := newTestStore(t, NewMemoryProvider())
	assert.Equal(t, 42, Get(ctx, s, "missing-key", 42))

	_, err := TryGet[int](ctx, s, "missing-key")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, buf.String(), "absent keys are not an error worth logging")
}

func TestEmptyStoredTextCountsAsAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := NewMemoryProvider()
	require.NoError(t, p.Set(ctx, "blank", ""))
	s, _ := newTestStore(t, p)

	assert.Equal(t, "fallback", Get(ctx, s, "blank", "fallback"))
}

func TestUnavailableStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, s := range map[string]*Store{
		"nil store":    nil,
		"nil provider": New(nil, nil),
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, s.Available())
			assert.ErrorIs(t, s.TrySet(ctx, "k", 1), ErrUnavailable)
			assert.NotPanics(t, func() { s.Set(ctx, "k", 1) })
			assert.Equal(t, 7, Get(ctx, s, "k", 7))
		})
	}
}

func TestNoopProviderNeverStores(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, _ := newTestStore(t, NoopProvider{})
	require.NoError(t, s.TrySet(ctx, "k", "v"))
	assert.Equal(t, "default", Get(ctx, s, "k", "default"))
}

func TestDecodeFailureIsObservableAndMasked(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := NewMemoryProvider()
	require.NoError(t, p.Set(ctx, "corrupt", "{not json"))
	s, buf := newTestStore(t, p)

	_, err := TryGet[viewPrefs](ctx, s, "corrupt")
	assert.ErrorIs(t, err, ErrDecode)

	got := Get(ctx, s, "corrupt", viewPrefs{Theme: "light"})
	assert.Equal(t, viewPrefs{Theme: "light"}, got)
	assert.Contains(t, buf.String(), "error reading from storage")
}

func TestTypeMismatchFallsBackToDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, _ := newTestStore(t, NewMemoryProvider())
	s.Set(ctx, "count", "not a number")
	assert.Equal(t, 3, Get(ctx, s, "count", 3))
}

func TestEncodeFailureIsSwallowed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := NewMemoryProvider()
	s, buf := newTestStore(t, p)

	err := s.TrySet(ctx, "chan", make(chan int))
	var unsupported *json.UnsupportedTypeError
	assert.ErrorIs(t, err, ErrEncode)
	assert.ErrorAs(t, err, &unsupported)

	assert.NotPanics(t, func() { s.Set(ctx, "chan", make(chan int)) })
	assert.Equal(t, 0, p.Len())
	assert.Contains(t, buf.String(), "error saving to storage")
}

func TestProviderFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	quota := errors.New("quota exceeded")
	s, buf := newTestStore(t, failingProvider{err: quota})

	err := s.TrySet(ctx, "k", 1)
	assert.ErrorIs(t, err, ErrProvider)
	assert.ErrorIs(t, err, quota)

	_, err = TryGet[int](ctx, s, "k")
	assert.ErrorIs(t, err, ErrProvider)

	assert.Equal(t, 5, Get(ctx, s, "k", 5))
	assert.Contains(t, buf.String(), "quota exceeded")
}

func TestRawJSONValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s, _ := newTestStore(t, NewMemoryProvider())
	require.NoError(t, s.TrySet(ctx, "raw", json.RawMessage(`{"a": [1, 2]}`)))

	got, err := TryGet[json.RawMessage](ctx, s, "raw")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":[1,2]}`, string(got))
}

func TestBoundedMemoryProvider(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := NewBoundedMemoryProvider(2)
	s, _ := newTestStore(t, p)

	require.NoError(t, s.TrySet(ctx, "a", 1))
	require.NoError(t, s.TrySet(ctx, "b", 2))

	err := s.TrySet(ctx, "c", 3)
	assert.ErrorIs(t, err, ErrProvider)
	assert.ErrorIs(t, err, ErrFull)
	assert.Equal(t, 2, p.Len())

	require.NoError(t, s.TrySet(ctx, "a", 10), "overwriting an existing key is always allowed")
	assert.Equal(t, 10, Get(ctx, s, "a", 0))

	unbounded := NewBoundedMemoryProvider(0)
	for i := range 5 {
		require.NoError(t, unbounded.Set(ctx, string(rune('a'+i)), "v"))
	}
	assert.Equal(t, 5, unbounded.Len())
}
