package foreman

import (
	"context"
	"sync"
	"time"
)

// Cache stores resolver lookups. Implementations must be safe for
// concurrent use. Get returns ErrCacheMiss for absent or expired keys.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// MemoryCache is an in-process Cache with per-entry TTL and a bounded
// entry count.
type MemoryCache struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// DefaultCacheSize bounds a MemoryCache when no size is given.
const DefaultCacheSize = 1000

// NewMemoryCache creates a memory cache holding at most maxSize entries,
// each valid for ttl. A ttl of 0 means entries never expire.
func NewMemoryCache(maxSize int, ttl time.Duration) *MemoryCache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}

	return &MemoryCache{
		maxSize: maxSize,
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

// Get retrieves a cached value.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, ErrCacheMiss
	}

	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(c.entries, key)

		return nil, ErrCacheMiss
	}

	return entry.value, nil
}

// Set stores a value, evicting expired entries first when full.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		c.evictLocked()
	}

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = time.Now().Add(c.ttl)
	}

	c.entries[key] = memoryEntry{value: value, expiresAt: expiresAt}

	return nil
}

// Delete removes a key.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)

	return nil
}

// evictLocked drops expired entries, or an arbitrary one if nothing has
// expired. Callers hold c.mu.
func (c *MemoryCache) evictLocked() {
	now := time.Now()
	evicted := false

	for key, entry := range c.entries {
		if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
			delete(c.entries, key)

			evicted = true
		}
	}

	if evicted {
		return
	}

	for key := range c.entries {
		delete(c.entries, key)

		return
	}
}
