// Package cache stores rendered calendars keyed by their render options.
//
// Rendering is pure, so a cache entry never goes stale on its own. The TTL
// together with the entry and byte limits of [MemoryCache] bounds the memory
// of long-running servers. The CLI renders once per process and uses
// [NullCache].
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the lifetime of entries written by the pipeline runner.
const DefaultTTL = time.Hour

// Cache is a key/value store for rendered output.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
