package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/ballou-sms/internal/cache"
	"github.com/oggyb/ballou-sms/internal/cache/redis"
)

func newClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c := redis.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })

	return c, mr
}

func TestClient_Ping(t *testing.T) {
	c, _ := newClient(t)
	require.NoError(t, c.Ping(context.Background()))
}

func TestClient_Counters(t *testing.T) {
	ctx := context.Background()
	c, mr := newClient(t)

	n, err := c.Incr(ctx, cache.SentCounter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = c.Incr(ctx, cache.SentCounter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	v, err := c.Get(ctx, cache.SentCounter)
	require.NoError(t, err)
	assert.Equal(t, "2", v)
	assert.True(t, mr.Exists("notify:sent"))

	require.NoError(t, c.Del(ctx, cache.SentCounter, cache.FailedCounter))
	assert.False(t, mr.Exists("notify:sent"))
}

func TestClient_GetMissing(t *testing.T) {
	c, _ := newClient(t)

	_, err := c.Get(context.Background(), cache.RejectedCounter)
	require.ErrorIs(t, err, cache.ErrNotFound)
}

func TestClient_Unreachable(t *testing.T) {
	c, mr := newClient(t)
	mr.Close()

	require.Error(t, c.Ping(context.Background()))
}
