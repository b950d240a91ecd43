package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a small typed wrapper over ristretto keyed by string.
type Cache[T any] struct {
	impl      *ristretto.Cache[string, T]
	cacheType string
	ttl       time.Duration
}

// New creates a cache holding up to maxCost units as measured by costFunc.
// Entries expire after ttl.
func New[T any](costFunc func(T) int64, cacheType string, maxCost int64, ttl time.Duration) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e4,     // number of keys to track frequency of
		MaxCost:     maxCost, // maximum cost of cache
		BufferItems: 64,      // number of keys per Get buffer
		Metrics:     true,    // enable metrics
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl:      impl,
		cacheType: cacheType,
		ttl:       ttl,
	}, nil
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value with the cache's default TTL. Cost 0 defers to costFunc.
func (c *Cache[T]) Set(key string, value T) bool {
	return c.impl.SetWithTTL(key, value, 0, c.ttl)
}

// GetOrLoad returns the cached value for key, calling load and storing its
// result on a miss. hit reports whether the value came from the cache.
func (c *Cache[T]) GetOrLoad(key string, load func() (T, error)) (value T, hit bool, err error) {
	if v, ok := c.impl.Get(key); ok {
		return v, true, nil
	}
	v, err := load()
	if err != nil {
		return v, false, err
	}
	c.Set(key, v)
	// Sets are buffered; make this one visible to the next request.
	c.impl.Wait()
	return v, false, nil
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait waits for the cache to finish processing
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// GetItemCount returns the current number of items in the cache
func (c *Cache[T]) GetItemCount() int64 {
	return int64(c.impl.Metrics.KeysAdded() - c.impl.Metrics.KeysEvicted())
}

// Stats returns the counters exposed on the health endpoint.
func (c *Cache[T]) Stats() map[string]interface{} {
	metrics := c.impl.Metrics

	hitRate := 0.0
	totalRequests := metrics.Hits() + metrics.Misses()
	if totalRequests > 0 {
		hitRate = float64(metrics.Hits()) / float64(totalRequests) * 100
	}

	return map[string]interface{}{
		"cache_type":     c.cacheType,
		"hits":           metrics.Hits(),
		"misses":         metrics.Misses(),
		"sets":           metrics.KeysAdded(),
		"total_requests": totalRequests,
		"hit_rate":       hitRate,
		"cost_added":     metrics.CostAdded(),
		"cost_evicted":   metrics.CostEvicted(),
		"current_items":  c.GetItemCount(),
	}
}
