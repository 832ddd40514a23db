// File: lru.go
// Role: Cache is the mutable, driver-owned line-result memo (spec §4.6,
// §5 "the cache is mutable and owned by the driver; no other party writes
// to it"). MaxEntries == 0 means unbounded, the default for single-puzzle
// solves; disambiguator runs bound it with LRU eviction.
//
// No ecosystem LRU library appears anywhere in the retrieved pack (see
// DESIGN.md), so this wraps container/list directly — the standard,
// textbook O(1) get/put LRU shape.
package cache

import "container/list"

// Cache memoizes skim/scrub results keyed by Key.
type Cache struct {
	maxEntries int
	ll         *list.List
	items      map[Key]*list.Element

	hits, misses int
}

type entryNode struct {
	key   Key
	entry Entry
}

// New returns a Cache bounded to maxEntries (0 = unbounded).
func New(maxEntries int) *Cache {
	return &Cache{
		maxEntries: maxEntries,
		ll:         list.New(),
		items:      make(map[Key]*list.Element),
	}
}

// Get looks up key, promoting it to most-recently-used on a hit.
func (c *Cache) Get(key Key) (Entry, bool) {
	el, ok := c.items[key]
	if !ok {
		c.misses++

		return Entry{}, false
	}
	c.hits++
	c.ll.MoveToFront(el)

	return el.Value.(*entryNode).entry, true
}

// Put stores entry under key, evicting the least-recently-used entry if
// the cache is bounded and full.
func (c *Cache) Put(key Key, entry Entry) {
	if el, ok := c.items[key]; ok {
		el.Value.(*entryNode).entry = entry
		c.ll.MoveToFront(el)

		return
	}

	el := c.ll.PushFront(&entryNode{key: key, entry: entry})
	c.items[key] = el

	if c.maxEntries > 0 && c.ll.Len() > c.maxEntries {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			delete(c.items, oldest.Value.(*entryNode).key)
		}
	}
}

// Len returns the number of entries currently cached.
func (c *Cache) Len() int { return c.ll.Len() }

// Stats returns cumulative hit/miss counts, for callers that report the
// hit rate of a cache they shared across solves.
func (c *Cache) Stats() (hits, misses int) { return c.hits, c.misses }
