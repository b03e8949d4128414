package server_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/server"
)

func TestMemoryCache_LRU(t *testing.T) {
	ctx := context.Background()
	c := server.NewMemoryCache(2)

	require.NoError(t, c.Set(ctx, "a", []byte("1")))
	require.NoError(t, c.Set(ctx, "b", []byte("2")))
	_, ok, _ := c.Get(ctx, "a") // a becomes most recent
	require.True(t, ok)
	require.NoError(t, c.Set(ctx, "c", []byte("3")))

	assert.Equal(t, 2, c.Len())
	_, ok, _ = c.Get(ctx, "b")
	assert.False(t, ok, "least recently used entry is evicted")
	body, ok, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("1"), body)

	assert.Panics(t, func() { server.NewMemoryCache(0) })
}

// TestRedisCache_Unreachable checks that backend failures surface as errors,
// not as misses.
func TestRedisCache_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	c := server.NewRedisCache(client, time.Minute)

	ctx := context.Background()
	_, ok, err := c.Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, c.Set(ctx, "k", []byte("v")))
	assert.Error(t, c.Ping(ctx))

	assert.Panics(t, func() { server.NewRedisCache(nil, time.Minute) })
}
