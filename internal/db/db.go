// Package db defines the storage facade the Redis-backed repository
// consumes. Repositories depend on the narrow sub-interfaces, not the
// full Store.
package db

import (
	"context"
	"time"
)

// Store is the database facade combining all sub-interfaces.
type Store interface {
	Pinger
	HashStore
	ListStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashStore provides hash-based key-value operations.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// ListStore provides ordered-list operations.
type ListStore interface {
	LPush(ctx context.Context, key string, values ...string) error
	LRem(ctx context.Context, key, value string) error
	LRange(ctx context.Context, key string) ([]string, error)
}
