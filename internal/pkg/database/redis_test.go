package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/cabbooking/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, &RedisClient{Client: client}
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host: "127.0.0.1",
		Port: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetNX(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	ok, err := client.SetNX(ctx, "trips:sweep:lock", "node-a", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.SetNX(ctx, "trips:sweep:lock", "node-b", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	value, err := client.Get(ctx, "trips:sweep:lock")
	require.NoError(t, err)
	assert.Equal(t, "node-a", value)

	// Lock becomes available again after the TTL
	mr.FastForward(2 * time.Minute)
	ok, err = client.SetNX(ctx, "trips:sweep:lock", "node-b", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisClient_GetMissingKey(t *testing.T) {
	_, client := setupMiniredis(t)

	_, err := client.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_Delete(t *testing.T) {
	mr, client := setupMiniredis(t)
	require.NoError(t, mr.Set("key", "value"))

	err := client.Delete(context.Background(), "key")

	assert.NoError(t, err)
	assert.False(t, mr.Exists("key"))
}

func TestRedisClient_GetClient(t *testing.T) {
	_, client := setupMiniredis(t)
	assert.Equal(t, client.Client, client.GetClient())
}
