package cache

import (
	"fmt"
	"testing"
	"time"
)

// fakeClock drives expiry without sleeping.
type fakeClock struct {
	current time.Time
}

func (f *fakeClock) now() time.Time { return f.current }

func (f *fakeClock) advance(d time.Duration) { f.current = f.current.Add(d) }

func newTestCache(capacity int) (*Cache, *fakeClock) {
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return NewWithConfig(capacity, DefaultTTL, clock.now), clock
}

func TestGetSet(t *testing.T) {
	c, _ := newTestCache(DefaultCapacity)

	c.Set("Hello", "你好")
	got, ok := c.Get("Hello")
	if !ok || got != "你好" {
		t.Errorf("Expected 你好, got %q (ok=%v)", got, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Error("Expected miss for absent key")
	}
}

func TestNormalization(t *testing.T) {
	c, _ := newTestCache(DefaultCapacity)
	c.Set("Hello", "你好")

	for _, key := range []string{"hello", "HELLO", "  Hello  "} {
		got, ok := c.Get(key)
		if !ok || got != "你好" {
			t.Errorf("Get(%q): expected 你好, got %q (ok=%v)", key, got, ok)
		}
	}

	// All normalized forms share one entry.
	c.Set(" HELLO ", "您好")
	if c.Len() != 1 {
		t.Errorf("Expected 1 entry after re-set, got %d", c.Len())
	}
}

func TestTTLExpiry(t *testing.T) {
	c, clock := newTestCache(DefaultCapacity)
	c.Set("Hello", "你好")

	clock.advance(23 * time.Hour)
	if got, ok := c.Get("Hello"); !ok || got != "你好" {
		t.Errorf("Entry should survive 23h, got %q (ok=%v)", got, ok)
	}

	clock.advance(2 * time.Hour) // 25h total
	if _, ok := c.Get("Hello"); ok {
		t.Error("Entry should expire after 25h")
	}
	if c.Len() != 0 {
		t.Error("Expired entry should be deleted on read")
	}
}

func TestResetRefreshesTTL(t *testing.T) {
	c, clock := newTestCache(DefaultCapacity)
	c.Set("Hello", "你好")

	clock.advance(20 * time.Hour)
	c.Set("Hello", "你好")

	clock.advance(10 * time.Hour) // 30h from first set, 10h from second
	if _, ok := c.Get("Hello"); !ok {
		t.Error("Re-set should refresh the TTL window")
	}
}

func TestCapacityEviction(t *testing.T) {
	c, clock := newTestCache(500)

	for i := 0; i < 501; i++ {
		c.Set(fmt.Sprintf("word-%03d", i), fmt.Sprintf("译文-%03d", i))
		clock.advance(time.Second)
	}

	if c.Len() != 500 {
		t.Errorf("Expected 500 entries after eviction, got %d", c.Len())
	}
	if _, ok := c.Get("word-000"); ok {
		t.Error("Oldest entry should have been evicted")
	}
	for _, key := range []string{"word-001", "word-250", "word-500"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("Entry %q should survive eviction", key)
		}
	}
}

func TestEvictionOrderWithinOneClockTick(t *testing.T) {
	c, _ := newTestCache(3)

	// The clock never advances, so every entry shares one timestamp
	// and eviction falls back to insertion order.
	for _, key := range []string{"first", "second", "third", "fourth"} {
		c.Set(key, "译文")
	}

	if _, ok := c.Get("first"); ok {
		t.Error("First-inserted entry should be evicted on a timestamp tie")
	}
	for _, key := range []string{"second", "third", "fourth"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("Entry %q should survive eviction", key)
		}
	}
}

func TestClear(t *testing.T) {
	c, _ := newTestCache(DefaultCapacity)
	c.Set("Hello", "你好")
	c.Set("World", "世界")

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Expected empty cache after Clear, got %d entries", c.Len())
	}
	if _, ok := c.Get("Hello"); ok {
		t.Error("Cleared entry should be absent")
	}
}
