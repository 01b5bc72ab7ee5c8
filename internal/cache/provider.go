// Package cache stores serialized charge results keyed by idempotency key so
// retried checkouts replay the original outcome instead of re-charging.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by Get when a key is absent or expired.
var ErrNotFound = errors.New("key not found")

type Provider interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type Config struct {
	Provider              string
	RedisConnectionString string
}

// NewProvider builds the cache backend named by cfg.Provider. An empty
// provider name selects the in-process cache.
func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "memory", "":
		return NewMemoryProvider()
	case "redis":
		return NewRedisProvider(cfg.RedisConnectionString)
	default:
		return nil, fmt.Errorf("unsupported cache provider: %s", cfg.Provider)
	}
}

// ChargeKey namespaces an idempotency key for charge result storage.
func ChargeKey(idempotencyKey string) string {
	return "charge:" + idempotencyKey
}
