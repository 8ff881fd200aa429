package ratelimiter_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupform/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithClock(clock.Now), ratelimiter.WithCleanupInterval(0))
	t.Cleanup(store.Close)

	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, clock
}

func TestNewBucket_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1},
	}
	for _, cfg := range tests {
		_, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0)), cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}
}

func TestBucket_BurstThenDeny(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b, clock := newBucket(t, ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Second})

	for i := range 3 {
		res, err := b.Allow(ctx, "198.51.100.1")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 2-i, res.Remaining)
		assert.Zero(t, res.RetryAfter())
	}

	res, err := b.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, time.Second, res.RetryAfter())

	other, err := b.Allow(ctx, "198.51.100.2")
	require.NoError(t, err)
	assert.True(t, other.Allowed(), "keys have separate buckets")

	clock.Advance(time.Second)
	res, err = b.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.True(t, res.Allowed(), "one token refilled")
	assert.Equal(t, 0, res.Remaining)
}

func TestBucket_RefillCapsAtCapacity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b, clock := newBucket(t, ratelimiter.Config{Capacity: 5, RefillRate: 2, RefillInterval: time.Second})

	for range 5 {
		_, err := b.Allow(ctx, "k")
		require.NoError(t, err)
	}

	clock.Advance(time.Hour)
	res, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 4, res.Remaining, "a full bucket minus this request")
}

func TestBucket_DeniedRequestConsumesNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b, clock := newBucket(t, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Minute})

	for range 2 {
		_, err := b.Allow(ctx, "k")
		require.NoError(t, err)
	}
	for range 5 {
		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
		assert.Equal(t, -1, res.Remaining)
	}

	clock.Advance(time.Minute)
	res, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed(), "denials did not dig the bucket below zero")
	assert.Equal(t, 0, res.Remaining)
}

func TestMemoryStore_SweepsStaleBuckets(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithClock(clock.Now),
		ratelimiter.WithCleanupInterval(time.Millisecond),
		ratelimiter.WithStaleAfter(time.Minute),
	)
	t.Cleanup(store.Close)

	b, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	require.NoError(t, err)
	for _, key := range []string{"198.51.100.1", "198.51.100.2", "198.51.100.3"} {
		_, err := b.Allow(ctx, key)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, store.Len())

	clock.Advance(2 * time.Minute)
	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestSetHeaders(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: 1500 * time.Millisecond})

	res, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	h := http.Header{}
	ratelimiter.SetHeaders(h, res)
	assert.Equal(t, "1", h.Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", h.Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, h.Get("X-RateLimit-Reset"))
	assert.Empty(t, h.Get("Retry-After"))

	res, err = b.Allow(ctx, "k")
	require.NoError(t, err)
	h = http.Header{}
	ratelimiter.SetHeaders(h, res)
	assert.Equal(t, "0", h.Get("X-RateLimit-Remaining"))
	assert.Equal(t, "2", h.Get("Retry-After"), "rounded up")
}

func TestMemoryStore_CloseTwice(t *testing.T) {
	t.Parallel()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(time.Millisecond))
	assert.NotPanics(t, func() {
		store.Close()
		store.Close()
	})
}
