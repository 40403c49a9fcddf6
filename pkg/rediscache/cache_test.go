package rediscache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestNewClient_EmptyAddr(t *testing.T) {
	client, err := NewClient(context.Background(), Options{})

	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrCache)
}

func TestNewClient_PingFailure(t *testing.T) {
	client, err := NewClient(context.Background(), Options{Addr: "127.0.0.1:1"})

	assert.Nil(t, client)
	assert.ErrorIs(t, err, ErrCache)
}

func TestCache_Key(t *testing.T) {
	assert.Equal(t, "directory:clinic:7", New(nil, "directory", time.Minute).key("clinic:7"))
	assert.Equal(t, "clinic:7", New(nil, "", time.Minute).key("clinic:7"))
}

func TestCache_SetEncodeError(t *testing.T) {
	cache := New(unreachableClient(t), "directory", time.Minute)

	err := cache.Set(context.Background(), "broken", make(chan int))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCache)
	assert.Contains(t, err.Error(), "encode broken")
}

func TestCache_RedisUnavailable(t *testing.T) {
	cache := New(unreachableClient(t), "directory", time.Minute)
	ctx := context.Background()

	var dst map[string]string
	err := cache.Get(ctx, "clinic:7", &dst)
	assert.ErrorIs(t, err, ErrCache)
	assert.NotErrorIs(t, err, ErrCacheMiss)

	assert.ErrorIs(t, cache.Set(ctx, "clinic:7", map[string]string{"name": "A"}), ErrCache)
	assert.ErrorIs(t, cache.Delete(ctx, "clinic:7"), ErrCache)
}
