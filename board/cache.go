package board

import "sync"

// CachedEval is what the position-hash cache stores for a board: the
// static score from a given player's perspective and whether that
// position is already a terminal state.
type CachedEval struct {
	Score  int32
	IsEnd  bool
}

// CacheStats tracks hit/miss behavior for a Cache, the way the original
// engine's cache kept a running hit counter alongside the map.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Size   uint64
}

// Cache memoizes static (depth-1) position scores, keyed by Zobrist
// hash. It is safe for concurrent use: a mutex guards the entries and
// the counters. The search driver does not consult it.
type Cache struct {
	enabled bool
	hasher  *Hasher
	mu      sync.Mutex
	entries map[uint64]CachedEval
	stats   CacheStats
}

// NewCache builds a cache for the given board size. Pass enabled=false
// to build a cache that always misses, used when the caller's
// configuration has caching turned off but still wants a uniform
// lookup/insert interface.
func NewCache(size int, enabled bool) *Cache {
	return &Cache{
		enabled: enabled,
		hasher:  NewHasher(size),
		entries: make(map[uint64]CachedEval),
	}
}

// Lookup returns the cached evaluation for b, if any.
func (c *Cache) Lookup(b *Board) (CachedEval, bool) {
	if !c.enabled {
		return CachedEval{}, false
	}
	key := c.hasher.Hash(b)
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	return v, ok
}

// Insert stores an evaluation for b.
func (c *Cache) Insert(b *Board, eval CachedEval) {
	if !c.enabled {
		return
	}
	key := c.hasher.Hash(b)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists {
		c.stats.Size++
	}
	c.entries[key] = eval
}

// Stats returns a snapshot of the cache's hit/miss counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
