package cache

import (
	"strconv"
	"testing"
)

func TestLRUGetPut(t *testing.T) {
	c := NewLRU[string, int](2)

	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache should miss")
	}

	c.Put("a", 1)
	c.Put("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = (%d, %v), want (1, true)", v, ok)
	}

	// "b" is now least recently used and must go.
	c.Put("c", 3)
	if _, ok := c.Get("b"); ok {
		t.Error("Get(b) should miss after eviction")
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("Get(c) = (%d, %v), want (3, true)", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLRUPutReplaces(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Put("a", 1)
	c.Put("a", 5)

	if v, _ := c.Get("a"); v != 5 {
		t.Errorf("Get(a) = %d, want 5", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestLRUZeroCapacity(t *testing.T) {
	c := NewLRU[string, int](0)
	c.Put("a", 1)
	if _, ok := c.Get("a"); ok {
		t.Error("zero-capacity cache should never hit")
	}

	c = NewLRU[string, int](-3)
	if got := c.Stats().Capacity; got != 0 {
		t.Errorf("Capacity = %d, want 0 for negative input", got)
	}
}

func TestLRUSetCapacityEvicts(t *testing.T) {
	c := NewLRU[int, int](10)
	for i := 0; i < 10; i++ {
		c.Put(i, i)
	}
	c.Get(0) // keep the oldest alive

	c.SetCapacity(3)
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	for _, k := range []int{0, 9, 8} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("Get(%d) missed, want hit", k)
		}
	}
	if got := c.Stats().Evictions; got != 7 {
		t.Errorf("Evictions = %d, want 7", got)
	}
}

func TestLRUStats(t *testing.T) {
	c := NewLRU[string, int](8)
	c.Put("x", 1)
	c.Get("x")
	c.Get("y")

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Len != 1 || s.Capacity != 8 {
		t.Errorf("Stats() = %+v, want 1 hit, 1 miss, len 1, capacity 8", s)
	}
}

func BenchmarkLRUGet(b *testing.B) {
	c := NewLRU[string, int](100)
	for i := 0; i < 100; i++ {
		c.Put(strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("50")
	}
}
