package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// memoryEntries bounds the in-process cache; LRU eviction handles overflow
// between TTL expiries.
const memoryEntries = 10_000

type entry struct {
	value     string
	expiresAt time.Time
}

// MemoryProvider is an in-process provider backed by an LRU cache. Expiry is
// checked lazily on read.
type MemoryProvider struct {
	entries *lru.Cache[string, entry]
}

func NewMemoryProvider() (*MemoryProvider, error) {
	entries, err := lru.New[string, entry](memoryEntries)
	if err != nil {
		return nil, err
	}
	return &MemoryProvider{entries: entries}, nil
}

func (m *MemoryProvider) Get(_ context.Context, key string) (string, error) {
	cached, ok := m.entries.Get(key)
	if !ok {
		return "", ErrNotFound
	}
	if time.Now().After(cached.expiresAt) {
		m.entries.Remove(key)
		return "", ErrNotFound
	}
	return cached.value, nil
}

func (m *MemoryProvider) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.entries.Add(key, entry{value: value, expiresAt: time.Now().Add(ttl)})
	return nil
}

func (m *MemoryProvider) Delete(_ context.Context, key string) error {
	m.entries.Remove(key)
	return nil
}

func (m *MemoryProvider) Close() error {
	return nil
}
