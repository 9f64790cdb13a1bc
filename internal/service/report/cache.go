package report

import (
	"sync"
	"time"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/storage"
)

// rangeCache memoizes fetched row sets per date range for a short TTL. It is
// a performance measure, not a correctness one: a stale entry only delays new
// rows until expiry or an explicit refresh.
type rangeCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	rows     []storage.ProductionRecord
	storedAt time.Time
}

func newRangeCache(ttl time.Duration) *rangeCache {
	return &rangeCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *rangeCache) get(key string) ([]storage.ProductionRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.rows, true
}

func (c *rangeCache) set(key string, rows []storage.ProductionRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{rows: rows, storedAt: c.now()}
}

func (c *rangeCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
