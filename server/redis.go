package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	// lockExpiry bounds how long a crashed holder can block a key.
	lockExpiry = 10 * time.Second
	lockTries  = 16
)

// RedisCache stores bodies in Redis with a TTL and guards misses with a
// distributed mutex.
type RedisCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisCache wraps client. ttl ≤ 0 stores entries without expiry.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if client == nil {
		panic("server: NewRedisCache(nil)")
	}
	return &RedisCache{
		client: client,
		locker: redsync.New(goredis.NewPool(client)),
		ttl:    max(ttl, 0),
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return body, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, body []byte) error {
	if err := c.client.Set(ctx, key, body, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Lock acquires the mutex "<key>:lock".
func (c *RedisCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(key+":lock", redsync.WithExpiry(lockExpiry), redsync.WithTries(lockTries))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("redis lock %s: %w", key, err)
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}

// Ping checks connectivity.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
