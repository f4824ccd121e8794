// Package store defines the key-value store contract used for ephemeral
// shares, plus Redis and in-memory implementations.
package store

import (
	"context"
	"time"
)

// Store is a thin contract over a key-value store with per-key expiry.
// Implementations must provide atomic per-key operations; no multi-key
// transactions are required.
//
// Get returns (nil, nil) when the key is absent or expired, matching the
// Fiber storage convention.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	// SetIfNotExists writes the key only if it is not already present and
	// reports whether the write happened.
	SetIfNotExists(ctx context.Context, key string, val []byte, ttl time.Duration) (bool, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	Close() error
}
