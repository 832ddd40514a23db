package cache_test

import (
	"testing"

	"github.com/katalvlaran/nonolath/cache"
	"github.com/katalvlaran/nonolath/grid"
	"github.com/katalvlaran/nonolath/palette"
)

func vec(n int) []palette.Set {
	out := make([]palette.Set, n)
	for i := range out {
		out[i] = palette.Single(palette.Color(i % 2))
	}

	return out
}

// TestCache_RoundTrip verifies Put followed by Get returns the stored entry.
func TestCache_RoundTrip(t *testing.T) {
	c := cache.New(0)
	key := cache.NewKey(grid.LineClues{{Color: 1, Length: 2}}, vec(5), cache.Skim)
	c.Put(key, cache.Entry{Vector: vec(5)})

	got, ok := c.Get(key)
	if !ok {
		t.Fatalf("Get miss after Put")
	}
	if len(got.Vector) != 5 {
		t.Errorf("got.Vector len = %d; want 5", len(got.Vector))
	}
}

// TestCache_OrientationAgnosticKey locks in SPEC_FULL.md's cache key
// stability requirement: a row and a column sharing clues and vector
// produce the same Key, with no orientation or index baked in.
func TestCache_OrientationAgnosticKey(t *testing.T) {
	clues := grid.LineClues{{Color: 1, Length: 3}}
	v := vec(5)
	rowKey := cache.NewKey(clues, v, cache.Skim)
	colKey := cache.NewKey(clues, v, cache.Skim)

	if rowKey != colKey {
		t.Fatalf("keys differ for identical (clues, vector, engine): %+v vs %+v", rowKey, colKey)
	}
}

// TestCache_EngineDistinguishesEntries ensures skim and scrub results for
// the same (clues, vector) do not collide.
func TestCache_EngineDistinguishesEntries(t *testing.T) {
	clues := grid.LineClues{{Color: 1, Length: 3}}
	v := vec(5)
	skimKey := cache.NewKey(clues, v, cache.Skim)
	scrubKey := cache.NewKey(clues, v, cache.Scrub)
	if skimKey == scrubKey {
		t.Fatalf("skim and scrub keys collided: %+v", skimKey)
	}
}

// TestCache_LRUEvictsOldest checks a bounded cache evicts the
// least-recently-used entry once full.
func TestCache_LRUEvictsOldest(t *testing.T) {
	c := cache.New(2)
	k1 := cache.NewKey(grid.LineClues{{Color: 1, Length: 1}}, vec(3), cache.Skim)
	k2 := cache.NewKey(grid.LineClues{{Color: 2, Length: 1}}, vec(3), cache.Skim)
	k3 := cache.NewKey(grid.LineClues{{Color: 1, Length: 2}}, vec(3), cache.Skim)

	c.Put(k1, cache.Entry{})
	c.Put(k2, cache.Entry{})
	c.Get(k1) // promote k1, making k2 the LRU victim
	c.Put(k3, cache.Entry{})

	if _, ok := c.Get(k2); ok {
		t.Errorf("k2 should have been evicted")
	}
	if _, ok := c.Get(k1); !ok {
		t.Errorf("k1 should still be cached (recently used)")
	}
	if _, ok := c.Get(k3); !ok {
		t.Errorf("k3 should be cached (just inserted)")
	}
}

// TestCache_StatsCountHitsAndMisses checks the hit-rate bookkeeping
// Stats reports.
func TestCache_StatsCountHitsAndMisses(t *testing.T) {
	c := cache.New(0)
	key := cache.NewKey(grid.LineClues{{Color: 1, Length: 1}}, vec(2), cache.Skim)

	c.Get(key) // miss
	c.Put(key, cache.Entry{})
	c.Get(key) // hit

	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats() = (%d, %d); want (1, 1)", hits, misses)
	}
}
