package server

import (
	"context"
	"sync"

	"github.com/zyedidia/generic/cache"
)

// Cache stores rendered maze bodies by key.
// A miss is (nil, false, nil); err is reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, body []byte) error
}

// Locker is implemented by caches that can serialize the work behind a
// miss across processes. unlock must be called once the entry is stored.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// MemoryCache is a bounded, goroutine-safe LRU cache.
type MemoryCache struct {
	mu  sync.Mutex
	lru *cache.Cache[string, []byte]
}

// NewMemoryCache returns a cache holding at most capacity entries.
// Panics if capacity < 1.
func NewMemoryCache(capacity int) *MemoryCache {
	if capacity < 1 {
		panic("server: NewMemoryCache capacity must be positive")
	}
	return &MemoryCache{lru: cache.New[string, []byte](capacity)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	body, ok := c.lru.Get(key)
	return body, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Put(key, body)
	return nil
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Size()
}
