package summary

import (
	"context"
	"sync"
	"time"

	"country-currency/core/metrics"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const cacheSize = 8

// CachedStore serves reads from an expirable LRU in front of another store.
// Every successful Put replaces the cached entry. A read that overlapped a
// Put never caches the bytes it loaded.
type CachedStore struct {
	store Store
	key   string
	cache *expirable.LRU[string, []byte]

	mu         sync.Mutex
	generation uint64
}

// NewCachedStore wraps store. A non-positive ttl keeps entries until replaced.
func NewCachedStore(store Store, key string, ttl time.Duration) *CachedStore {
	return &CachedStore{
		store: store,
		key:   key,
		cache: expirable.NewLRU[string, []byte](cacheSize, nil, ttl),
	}
}

// Put writes through to the underlying store.
func (c *CachedStore) Put(ctx context.Context, data []byte) error {
	err := c.store.Put(ctx, data)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	if err != nil {
		c.cache.Remove(c.key)
		return err
	}
	c.cache.Add(c.key, data)
	return nil
}

// Get returns the cached bytes or loads them from the underlying store.
func (c *CachedStore) Get(ctx context.Context) ([]byte, error) {
	if data, ok := c.cache.Get(c.key); ok {
		metrics.ArtifactCacheHits.Inc()
		return data, nil
	}
	metrics.ArtifactCacheMisses.Inc()

	c.mu.Lock()
	seen := c.generation
	c.mu.Unlock()

	data, err := c.store.Get(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.generation == seen {
		c.cache.Add(c.key, data)
	}
	c.mu.Unlock()
	return data, nil
}
