package trends

import (
	"sync"
	"time"

	"talent-service/internal/models"
)

type cacheEntry struct {
	trends   []models.Trend
	storedAt time.Time
}

// CatalogCache is an in-process read cache for AI-generated trend catalogs,
// keyed by category. The clock is injectable so expiry is testable; entries
// past the TTL are returned with a stale flag rather than dropped, letting
// callers serve stale data while a refresh is in flight.
type CatalogCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

func NewCatalogCache(ttl time.Duration, now func() time.Time) *CatalogCache {
	if now == nil {
		now = time.Now
	}
	return &CatalogCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached trends for a category and whether they are stale.
// A nil slice means no entry exists.
func (c *CatalogCache) Get(category string) ([]models.Trend, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[category]
	if !ok {
		return nil, false
	}

	stale := c.now().Sub(entry.storedAt) > c.ttl
	out := make([]models.Trend, len(entry.trends))
	copy(out, entry.trends)
	return out, stale
}

// Put stores the trends for a category, resetting its age
func (c *CatalogCache) Put(category string, trends []models.Trend) {
	stored := make([]models.Trend, len(trends))
	copy(stored, trends)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[category] = cacheEntry{trends: stored, storedAt: c.now()}
}

// Invalidate drops every cached entry
func (c *CatalogCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
