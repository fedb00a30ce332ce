// Package cache memoizes translation results in memory. Entries are
// keyed by a normalized form of the input text, bounded in number and
// expired by age so stale translations never outlive a day.
package cache

import (
	"strings"
	"time"
)

const (
	// DefaultCapacity bounds the number of live entries.
	DefaultCapacity = 500
	// DefaultTTL is the age after which an entry reads as absent.
	DefaultTTL = 24 * time.Hour
)

type entry struct {
	translation string
	insertedAt  time.Time
	seq         uint64
}

// Cache is a bounded, time-expiring translation cache. It is used from
// a single goroutine alongside the backend selector and holds no locks.
type Cache struct {
	entries  map[string]entry
	capacity int
	ttl      time.Duration
	now      func() time.Time
	seq      uint64
}

// New creates a cache with the default capacity and TTL.
func New() *Cache {
	return NewWithConfig(DefaultCapacity, DefaultTTL, time.Now)
}

// NewWithConfig creates a cache with explicit bounds and clock. Tests
// inject a fake clock to drive expiry.
func NewWithConfig(capacity int, ttl time.Duration, now func() time.Time) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{
		entries:  make(map[string]entry),
		capacity: capacity,
		ttl:      ttl,
		now:      now,
	}
}

// normalizeKey trims and case-folds so "Hello", " hello " and "HELLO"
// share one entry.
func normalizeKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Get returns the cached translation for text, or "" and false when
// absent. Expired entries are deleted on the way out.
func (c *Cache) Get(text string) (string, bool) {
	key := normalizeKey(text)
	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.insertedAt) > c.ttl {
		delete(c.entries, key)
		return "", false
	}
	return e.translation, true
}

// Set stores a translation. At capacity the single oldest entry is
// evicted first; re-setting an existing key refreshes its TTL window.
func (c *Cache) Set(text, translation string) {
	key := normalizeKey(text)
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evictOldest()
	}
	c.seq++
	c.entries[key] = entry{translation: translation, insertedAt: c.now(), seq: c.seq}
}

// evictOldest removes the entry with the earliest insertion time. The
// sequence number breaks timestamp ties, so entries stored within one
// clock tick still evict in insertion order.
func (c *Cache) evictOldest() {
	var oldestKey string
	var oldest entry
	first := true
	for key, e := range c.entries {
		if first || e.insertedAt.Before(oldest.insertedAt) ||
			(e.insertedAt.Equal(oldest.insertedAt) && e.seq < oldest.seq) {
			oldestKey = key
			oldest = e
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}

// Clear drops every entry. Called whenever the backend configuration
// changes, since cached values may come from a different backend.
func (c *Cache) Clear() {
	c.entries = make(map[string]entry)
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	return len(c.entries)
}
