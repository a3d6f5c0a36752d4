package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/constants"
	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/logger"
)

// Limiter answers whether one more request is allowed for an identifier
// within a scope.
type Limiter interface {
	Allow(ctx context.Context, scope constants.RateLimitScope, identifier string) (bool, error)
}

// Lua script for an atomic token bucket. State lives in a Redis hash so
// concurrent instances share one bucket per identifier.
const tokenBucketScript = `
local key = KEYS[1]
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local now = tonumber(ARGV[3])

local bucket = redis.call('HMGET', key, 'tokens', 'last_refill')
local tokens = tonumber(bucket[1]) or capacity
local last_refill = tonumber(bucket[2]) or now

local elapsed = now - last_refill
tokens = math.min(tokens + elapsed * rate / 1000, capacity)

local allowed = 0
if tokens >= 1 then
    tokens = tokens - 1
    allowed = 1
end

redis.call('HMSET', key, 'tokens', tokens, 'last_refill', now)
redis.call('PEXPIRE', key, math.ceil(capacity / rate * 1000) + 60000)

return allowed
`

// RedisLimiter is a distributed token bucket limiter with an in-process
// fallback. When Redis fails the local pool takes over so a cache outage
// throttles per instance instead of failing open entirely.
type RedisLimiter struct {
	client   *redis.Client
	script   *redis.Script
	local    *TokenBucketPool
	capacity float64
	rate     float64
	log      logger.Logger
}

// NewRedisLimiter creates a limiter allowing rpm requests per minute with
// the given burst capacity.
func NewRedisLimiter(client *redis.Client, rpm, burst int, log logger.Logger) *RedisLimiter {
	if rpm <= 0 {
		rpm = 60
	}
	if burst <= 0 {
		burst = rpm
	}
	rate := float64(rpm) / 60.0
	return &RedisLimiter{
		client:   client,
		script:   redis.NewScript(tokenBucketScript),
		local:    NewTokenBucketPool(float64(burst), rate),
		capacity: float64(burst),
		rate:     rate,
		log:      log.WithComponent("ratelimit"),
	}
}

// Allow consumes one token for the identifier within the scope.
func (rl *RedisLimiter) Allow(ctx context.Context, scope constants.RateLimitScope, identifier string) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", scope, identifier)

	result, err := rl.script.Run(ctx, rl.client, []string{key},
		rl.capacity, rl.rate, time.Now().UnixMilli()).Int()
	if err != nil {
		rl.log.Warn(ctx, "redis rate limit check failed, using local bucket", logger.Fields{
			"scope": string(scope),
			"error": err.Error(),
		})
		return rl.local.Allow(key), nil
	}
	return result == 1, nil
}
