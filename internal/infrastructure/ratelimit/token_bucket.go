// Package ratelimit provides rate limiting for the analytics endpoints.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket is a thread-safe token bucket with continuous refill.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	rate       float64 // tokens per second
	lastRefill time.Time
}

// NewTokenBucket creates a bucket that starts full.
func NewTokenBucket(capacity, rate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		rate:       rate,
		lastRefill: time.Now(),
	}
}

// Allow consumes one token if available.
func (tb *TokenBucket) Allow() bool {
	return tb.AllowN(1)
}

// AllowN consumes n tokens if available.
func (tb *TokenBucket) AllowN(n float64) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	if tb.tokens >= n {
		tb.tokens -= n
		return true
	}
	return false
}

// refill must be called with the lock held.
func (tb *TokenBucket) refill() {
	now := time.Now()
	tb.tokens += now.Sub(tb.lastRefill).Seconds() * tb.rate
	if tb.tokens > tb.capacity {
		tb.tokens = tb.capacity
	}
	tb.lastRefill = now
}

// Available reports the current token count after refill.
func (tb *TokenBucket) Available() float64 {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.refill()
	return tb.tokens
}

// TokenBucketPool keys local buckets by identifier. It serves as the
// in-process fallback when Redis is unreachable.
type TokenBucketPool struct {
	mu       sync.Mutex
	buckets  map[string]*TokenBucket
	capacity float64
	rate     float64
}

// NewTokenBucketPool creates a pool; every bucket shares one capacity/rate.
func NewTokenBucketPool(capacity, rate float64) *TokenBucketPool {
	return &TokenBucketPool{
		buckets:  make(map[string]*TokenBucket),
		capacity: capacity,
		rate:     rate,
	}
}

// Allow consumes a token from the bucket for key, creating it on first use.
func (p *TokenBucketPool) Allow(key string) bool {
	p.mu.Lock()
	bucket, ok := p.buckets[key]
	if !ok {
		bucket = NewTokenBucket(p.capacity, p.rate)
		p.buckets[key] = bucket
	}
	p.mu.Unlock()
	return bucket.Allow()
}

// Remove drops the bucket for key.
func (p *TokenBucketPool) Remove(key string) {
	p.mu.Lock()
	delete(p.buckets, key)
	p.mu.Unlock()
}
