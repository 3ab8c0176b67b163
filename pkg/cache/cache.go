// Package cache stores rendered chart artifacts.
//
// Three backends implement [Cache]: [FileCache] for the CLI, [RedisCache]
// for the HTTP server when several instances share one cache, and
// [NullCache] when caching is disabled. Keys are built by a [Keyer] from
// the content hash of a chart's options and dataset, so identical requests
// resolve to the same entry regardless of which backend holds it.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the value for key and whether it was found. A missing or
	// expired entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}

// Default entry lifetimes.
const (
	TTLArtifact = 7 * 24 * time.Hour
	TTLLayout   = 24 * time.Hour
)
