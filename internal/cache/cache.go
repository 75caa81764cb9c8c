// Package cache implements a generic keyed memo with hit/miss/insert/clear
// accounting and insertion-order iteration, used for kiln's three
// process-wide memo tables (directory-existence, file mtimes, and header
// dependency lists).
package cache

import (
	"github.com/cespare/xxhash/v2"
)

// Stats is a snapshot of a Cache's lifetime accounting.
type Stats struct {
	Puts    int
	Hits    int
	Misses  int
	Clears  int
	KeyHash uint64
}

// Cache is a generic key/value memo. Iteration order (Keys) is insertion
// order. It is not safe for concurrent use: kiln's build engine is single-threaded
// per spec.md §5, so no locking is required here.
type Cache[K comparable, V any] struct {
	values map[K]V
	order  []K
	stats  Stats
}

// New creates an empty Cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{values: make(map[K]V)}
}

// Get looks up key, recording a hit or a miss.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.values[key]
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return v, ok
}

// Contains reports whether key is present, without affecting hit/miss
// counters.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.values[key]
	return ok
}

// Put inserts or overwrites key's value. Re-inserting an existing key does
// not duplicate it in the insertion order.
func (c *Cache[K, V]) Put(key K, value V) {
	if _, exists := c.values[key]; !exists {
		c.order = append(c.order, key)
	}
	c.values[key] = value
	c.stats.Puts++
}

// ClearEntry removes a single key, if present.
func (c *Cache[K, V]) ClearEntry(key K) {
	if _, exists := c.values[key]; !exists {
		return
	}
	delete(c.values, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.stats.Clears++
}

// ClearAll removes every entry.
func (c *Cache[K, V]) ClearAll() {
	c.values = make(map[K]V)
	c.order = nil
	c.stats.Clears++
}

// Keys returns every key in insertion order. The caller must not mutate the
// returned slice.
func (c *Cache[K, V]) Keys() []K {
	return c.order
}

// Len reports the number of entries currently cached.
func (c *Cache[K, V]) Len() int {
	return len(c.values)
}

// Stats returns a snapshot of hit/miss/put/clear counters plus an xxhash
// digest of the current key set, so two runs' cache shapes can be compared
// in verbose diagnostics without dumping every key.
func (c *Cache[K, V]) Stats() Stats {
	s := c.stats
	h := xxhash.New()
	for _, k := range c.order {
		_, _ = h.WriteString(keyString(k))
		_, _ = h.Write([]byte{0})
	}
	s.KeyHash = h.Sum64()
	return s
}

// keyString renders a comparable key for hashing purposes. Cache is only
// instantiated in this codebase with string keys, so a type switch covers
// every real caller; anything else falls back to a fixed placeholder rather
// than reaching for reflection.
func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return "?"
}
