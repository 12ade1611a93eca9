package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/gobudget/internal/usecase"
)

func TestCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)

	cache := NewCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "dashboard:summary", []byte(`{"Currency":"USD"}`), time.Minute))

	val, err := cache.Get(ctx, "dashboard:summary")
	require.NoError(t, err)
	assert.JSONEq(t, `{"Currency":"USD"}`, string(val))
	assert.True(t, mr.Exists("budget:cache:dashboard:summary"))
}

func TestCacheMiss(t *testing.T) {
	client, _ := newTestRedisClient(t)

	_, err := NewCache(client).Get(context.Background(), "absent")
	assert.ErrorIs(t, err, usecase.ErrCacheMiss)
}

func TestCacheExpiry(t *testing.T) {
	client, mr := newTestRedisClient(t)

	cache := NewCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, usecase.ErrCacheMiss)
}

func TestCacheDelete(t *testing.T) {
	client, _ := newTestRedisClient(t)

	cache := NewCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "foo", []byte("bar"), time.Minute))
	require.NoError(t, cache.Delete(ctx, "foo"))

	_, err := cache.Get(ctx, "foo")
	assert.ErrorIs(t, err, usecase.ErrCacheMiss)
}

func TestCacheServerDown(t *testing.T) {
	client, mr := newTestRedisClient(t)

	mr.Close()

	_, err := NewCache(client).Get(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, usecase.ErrCacheMiss)
}
