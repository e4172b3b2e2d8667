// Package cache implements the process-wide keyed cache contract spec
// §6 calls NODE_CACHE/PARENT_CACHE: "return the cached value for key,
// or compute-and-store once." The teacher has no equivalent generic
// primitive (its caches are one-off maps on Environment/CallStack);
// this is new, grounded directly in the spec's own wording rather than
// any pack file, and kept to stdlib (sync.Mutex + generics) since
// nothing in the pack ships a getOrUpdate-style cache library and a
// map this small doesn't need one.
package cache

import "sync"

// Cache is a keyed store with a getOrUpdate contract. Entries are
// populated monotonically: once set, a key's value never changes
// (spec §5 relies on this for lock-free single-threaded exposure).
type Cache[K comparable, V any] struct {
	mu sync.Mutex
	m  map[K]V
}

// New creates an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{m: make(map[K]V)}
}

// GetOrUpdate returns the cached value for key, computing and storing
// it via compute on a miss. The lock is not held while compute runs:
// sequential calls compute a key at most once, but concurrent misses
// on the same key may each call compute, and the first value stored
// is the one every caller gets back.
func (c *Cache[K, V]) GetOrUpdate(key K, compute func() V) V {
	c.mu.Lock()
	if v, ok := c.m[key]; ok {
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	v := compute()

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.m[key]; ok {
		return existing
	}
	c.m[key] = v
	return v
}

// Get returns the cached value for key without computing it.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[key]
	return v, ok
}

// Len returns the number of entries currently cached.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}
