// Package cache stores serialized analysis results keyed by input.
package cache

import "context"

// Cache is a byte-value cache. A miss is (nil, false, nil).
// Implementations are safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}
