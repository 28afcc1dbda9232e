package cache

import (
	"context"
	"sync"
	"time"
)

// Default bounds of a MemoryCache.
const (
	DefaultMaxEntries = 1024
	DefaultMaxBytes   = 64 << 20

	// sweepInterval spaces out full scans for expired entries.
	sweepInterval = time.Minute
)

// MemoryCache keeps entries in a map for the lifetime of the process.
// Expired entries are swept on Set, and once the entry or byte limit is
// reached the oldest entries are evicted first. It is safe for concurrent use.
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	size       int
	seq        uint64
	lastSweep  time.Time
	maxEntries int
	maxBytes   int
	now        func() time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
	seq       uint64
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryOption configures a MemoryCache.
type MemoryOption func(*MemoryCache)

// WithMaxEntries limits the number of stored entries. n < 1 keeps the default.
func WithMaxEntries(n int) MemoryOption {
	return func(c *MemoryCache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithMaxBytes limits the total size of stored values. n < 1 keeps the default.
func WithMaxBytes(n int) MemoryOption {
	return func(c *MemoryCache) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// NewMemoryCache creates an empty in-process cache.
func NewMemoryCache(opts ...MemoryOption) *MemoryCache {
	c := &MemoryCache{
		entries:    make(map[string]memoryEntry),
		maxEntries: DefaultMaxEntries,
		maxBytes:   DefaultMaxBytes,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a value from the cache. Expired entries are dropped.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	if entry.expired(c.now()) {
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && cur.seq == entry.seq {
			c.remove(key)
		}
		c.mu.Unlock()
		return nil, false, nil
	}
	return entry.data, true, nil
}

// Set stores a copy of data. Values larger than the byte limit are not stored.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if len(data) > c.maxBytes {
		return c.Delete(ctx, key)
	}

	now := c.now()
	entry := memoryEntry{data: append([]byte(nil), data...)}
	if ttl > 0 {
		entry.expiresAt = now.Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.remove(key)
	if now.Sub(c.lastSweep) >= sweepInterval {
		c.sweep(now)
	}
	for len(c.entries) > 0 && (len(c.entries) >= c.maxEntries || c.size+len(entry.data) > c.maxBytes) {
		c.evictOldest()
	}

	c.seq++
	entry.seq = c.seq
	c.entries[key] = entry
	c.size += len(entry.data)
	return nil
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	c.remove(key)
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries. Expired entries count until they
// are swept or read.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Size returns the total size of the stored values in bytes.
func (c *MemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.size
}

// Close drops all entries.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.size = 0
	c.mu.Unlock()
	return nil
}

// remove deletes key. The caller holds mu.
func (c *MemoryCache) remove(key string) {
	if e, ok := c.entries[key]; ok {
		c.size -= len(e.data)
		delete(c.entries, key)
	}
}

// sweep drops every expired entry. The caller holds mu.
func (c *MemoryCache) sweep(now time.Time) {
	for k, e := range c.entries {
		if e.expired(now) {
			c.remove(k)
		}
	}
	c.lastSweep = now
}

// evictOldest drops the entry written first. The caller holds mu.
func (c *MemoryCache) evictOldest() {
	var (
		oldest string
		minSeq uint64
	)
	for k, e := range c.entries {
		if minSeq == 0 || e.seq < minSeq {
			oldest, minSeq = k, e.seq
		}
	}
	c.remove(oldest)
}

var _ Cache = (*MemoryCache)(nil)
