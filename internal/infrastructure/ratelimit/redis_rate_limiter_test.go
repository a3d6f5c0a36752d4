package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/constants"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

func newTestLimiter(t *testing.T, rpm, burst int) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLimiter(client, rpm, burst, logger.NewNoopLogger()), mr
}

func TestRedisLimiter_AllowsWithinBurst(t *testing.T) {
	limiter, _ := newTestLimiter(t, 60, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, constants.RateLimitScopeAnalytics, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, constants.RateLimitScopeAnalytics, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed, "burst exhausted")
}

func TestRedisLimiter_IdentifiersAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 60, 1)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, constants.RateLimitScopeAnalytics, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, constants.RateLimitScopeAnalytics, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, constants.RateLimitScopeAnalytics, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRedisLimiter_FallsBackToLocalBucketOnRedisFailure(t *testing.T) {
	limiter, mr := newTestLimiter(t, 60, 2)
	mr.Close()
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, constants.RateLimitScopeAnalytics, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, constants.RateLimitScopeAnalytics, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, constants.RateLimitScopeAnalytics, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestTokenBucket_RefillRestoresTokens(t *testing.T) {
	bucket := NewTokenBucket(2, 1000)

	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	// At 1000 tokens/s the bucket is full again almost immediately.
	assert.Eventually(t, bucket.Allow, 100*time.Millisecond, time.Millisecond)
}
