package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, max int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimiter(client, max, window), mr
}

func TestRateLimiter_AllowsUpToMax(t *testing.T) {
	l, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d, err := l.Allow(ctx, "auth", "10.0.0.1")
		require.NoError(t, err)
		require.True(t, d.Allowed, "hit %d should be allowed", i+1)
		require.Equal(t, 3-(i+1), d.Remaining)
	}

	d, err := l.Allow(ctx, "auth", "10.0.0.1")
	require.NoError(t, err)
	require.False(t, d.Allowed)
	require.Zero(t, d.Remaining)
	require.Greater(t, d.RetryAfter, time.Duration(0))
	require.LessOrEqual(t, d.RetryAfter, time.Minute)
}

func TestRateLimiter_SubjectsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	d, err := l.Allow(ctx, "auth", "a")
	require.NoError(t, err)
	require.True(t, d.Allowed)

	d, err = l.Allow(ctx, "auth", "b")
	require.NoError(t, err)
	require.True(t, d.Allowed)

	d, err = l.Allow(ctx, "auth", "a")
	require.NoError(t, err)
	require.False(t, d.Allowed)
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	l, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	_, err := l.Allow(ctx, "auth", "a")
	require.NoError(t, err)
	require.True(t, mr.Exists("ratelimit:auth:a"))

	mr.FastForward(61 * time.Second)

	d, err := l.Allow(ctx, "auth", "a")
	require.NoError(t, err)
	require.True(t, d.Allowed)
}

func TestRateLimiter_RedisDown(t *testing.T) {
	l, mr := newTestLimiter(t, 1, time.Minute)
	mr.Close()

	d, err := l.Allow(context.Background(), "auth", "a")
	require.Error(t, err)
	require.True(t, d.Allowed)
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	_, err = Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	require.Error(t, err)
}

func TestConnect_Disabled(t *testing.T) {
	client, err := Connect(context.Background(), Config{})
	require.NoError(t, err)
	require.Nil(t, client)
}
