package summary

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	data   []byte
	gets   int
	putErr error
}

func (s *countingStore) Put(_ context.Context, data []byte) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.data = data
	return nil
}

func (s *countingStore) Get(_ context.Context) ([]byte, error) {
	s.gets++
	if s.data == nil {
		return nil, ErrNotFound
	}
	return s.data, nil
}

func TestCachedStore_ReadThrough(t *testing.T) {
	inner := &countingStore{data: []byte("v1")}
	cached := NewCachedStore(inner, "cache/summary.png", time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		data, err := cached.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), data)
	}
	assert.Equal(t, 1, inner.gets)
}

func TestCachedStore_PutReplacesEntry(t *testing.T) {
	inner := &countingStore{data: []byte("v1")}
	cached := NewCachedStore(inner, "cache/summary.png", time.Minute)
	ctx := context.Background()

	_, err := cached.Get(ctx)
	require.NoError(t, err)

	require.NoError(t, cached.Put(ctx, []byte("v2")))

	data, err := cached.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), data)
	assert.Equal(t, 1, inner.gets)
}

func TestCachedStore_FailedPutDropsEntry(t *testing.T) {
	inner := &countingStore{data: []byte("v1")}
	cached := NewCachedStore(inner, "cache/summary.png", time.Minute)
	ctx := context.Background()

	_, err := cached.Get(ctx)
	require.NoError(t, err)

	inner.putErr = errors.New("disk full")
	require.Error(t, cached.Put(ctx, []byte("v2")))

	data, err := cached.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), data)
	assert.Equal(t, 2, inner.gets)
}

func TestCachedStore_NotFoundIsNotCached(t *testing.T) {
	inner := &countingStore{}
	cached := NewCachedStore(inner, "cache/summary.png", time.Minute)

	_, err := cached.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = cached.Get(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, inner.gets)
}

// gatedStore blocks Get after reading until release is closed.
type gatedStore struct {
	mu      sync.Mutex
	data    []byte
	read    chan struct{}
	release chan struct{}
}

func (s *gatedStore) Put(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

func (s *gatedStore) Get(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()
	close(s.read)
	<-s.release
	return data, nil
}

func TestCachedStore_ReadOverlappingPutIsNotCached(t *testing.T) {
	inner := &gatedStore{
		data:    []byte("old"),
		read:    make(chan struct{}),
		release: make(chan struct{}),
	}
	cached := NewCachedStore(inner, "cache/summary.png", time.Minute)
	ctx := context.Background()

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := cached.Get(ctx)
		done <- result{data, err}
	}()

	<-inner.read
	require.NoError(t, cached.Put(ctx, []byte("new")))
	close(inner.release)

	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, []byte("old"), res.data)

	data, err := cached.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}
