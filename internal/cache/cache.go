// Package cache stores serialized Lalin pages between requests.
package cache

import (
	"context"
	"time"
)

// Cache is a byte cache with prefix invalidation
type Cache interface {
	// Get returns the value of key; ok is false on a miss
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// DeletePrefix removes every key starting with prefix
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}
