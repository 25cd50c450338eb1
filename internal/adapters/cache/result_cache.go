// Package cache implements the in-memory result cache.
package cache

import (
	"sync"

	"github.com/golang/groupcache/lru"
	"go.trai.ch/deco/internal/core/domain"
	"go.trai.ch/deco/internal/core/ports"
)

var _ ports.ResultCache = (*ResultCache)(nil)

// ResultCache implements ports.ResultCache as a byte-bounded LRU keyed by file.
//
// All state sits behind a single mutex. The recency list is an lru.Cache with no
// entry limit; the byte budget is enforced here by evicting the oldest entries.
type ResultCache struct {
	mu        sync.Mutex
	entries   *lru.Cache
	capacity  int64
	size      int64
	hits      uint64
	misses    uint64
	evictions uint64
}

type entry struct {
	record domain.CacheRecord
	size   int64
}

// New creates a ResultCache with the given byte budget.
func New(capacityBytes int64) *ResultCache {
	c := &ResultCache{}
	c.Configure(capacityBytes)
	return c
}

// Configure discards every record and sets the byte budget.
// A non-positive budget retains nothing.
func (c *ResultCache) Configure(capacityBytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if capacityBytes < 0 {
		capacityBytes = 0
	}

	entries := lru.New(0)
	entries.OnEvicted = func(_ lru.Key, value any) {
		c.size -= value.(entry).size
	}

	c.entries = entries
	c.capacity = capacityBytes
	c.size = 0
	c.hits = 0
	c.misses = 0
	c.evictions = 0
}

// Lookup returns the record for id only when its digest equals digest.
// A record with a different digest is left in place but reported absent.
func (c *ResultCache) Lookup(id domain.FileID, digest domain.Digest) (domain.CacheRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries.Get(id)
	if !ok {
		c.misses++
		return domain.CacheRecord{}, false
	}

	e := v.(entry)
	if e.record.Digest != digest {
		c.misses++
		return domain.CacheRecord{}, false
	}

	c.hits++
	return e.record, true
}

// Store inserts or overwrites the record for id and evicts least recently used
// records until the cache fits its budget.
func (c *ResultCache) Store(id domain.FileID, digest domain.Digest, outcome domain.Outcome) {
	record := domain.CacheRecord{Digest: digest, Outcome: outcome}
	size := domain.RecordSize(id, record)

	c.mu.Lock()
	defer c.mu.Unlock()

	if size > c.capacity {
		// Cannot fit even in an empty cache. Drop the previous version as well,
		// it describes content that is no longer current.
		c.entries.Remove(id)
		return
	}

	if v, ok := c.entries.Get(id); ok {
		c.size -= v.(entry).size
	}
	c.entries.Add(id, entry{record: record, size: size})
	c.size += size

	for c.size > c.capacity && c.entries.Len() > 0 {
		c.entries.RemoveOldest()
		c.evictions++
	}
}

// Stats returns a snapshot of cache usage.
func (c *ResultCache) Stats() domain.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return domain.CacheStats{
		Entries:       c.entries.Len(),
		Bytes:         c.size,
		CapacityBytes: c.capacity,
		Hits:          c.hits,
		Misses:        c.misses,
		Evictions:     c.evictions,
	}
}
