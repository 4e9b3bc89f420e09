// Package cache stores planned and rendered slider artifacts.
//
// Rendering a slider is cheap, but the HTTP server and repeated CLI runs see
// the same settings over and over. Entries are keyed by a hash of the settings
// and render options (see [Keyer]), so any change to either produces a new key
// and stale entries simply expire.
//
// # Backends
//
//   - [NullCache]: never stores anything
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: shared cache for the HTTP server
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default lifetimes for cached entries.
const (
	TTLPlan     = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
