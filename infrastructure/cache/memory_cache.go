package cache

import (
	"context"
	"sync"
	"time"

	"trending-board/domain/repository"
)

type memoryEntry struct {
	payload []byte
	exp     time.Time
}

// MemoryCache is an in-process TTL cache used when no Redis is configured.
// The key space is tiny (region x category x count), so there is no eviction
// beyond expiry.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	now  func() time.Time
}

// NewMemoryCache returns an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]memoryEntry), now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	entry, ok := c.data[key]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.exp) {
		return nil, false
	}
	return entry.payload, true
}

func (c *MemoryCache) Set(_ context.Context, key string, payload []byte, ttl time.Duration) {
	c.mu.Lock()
	c.data[key] = memoryEntry{payload: payload, exp: c.now().Add(ttl)}
	c.mu.Unlock()
}

func (c *MemoryCache) InvalidateAll(_ context.Context) error {
	c.mu.Lock()
	c.data = make(map[string]memoryEntry)
	c.mu.Unlock()
	return nil
}

var _ repository.IDashboardCache = (*MemoryCache)(nil)
