// Package ratelimit provides rate limiting functionality using token bucket algorithm.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket is a per-client token bucket: requests consume tokens, which
// refill at a steady rate up to a burst capacity.
type TokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token if one is available.
func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	tb.tokens += now.Sub(tb.lastRefill).Seconds() * tb.refillRate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Limiter manages token buckets keyed by client and endpoint.
type Limiter struct {
	config *Config

	mu         sync.Mutex
	buckets    map[string]*TokenBucket
	lastAccess map[string]time.Time
	stop       chan struct{}
}

// NewLimiter creates a rate limiter. A nil config disables limiting.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{}
	}
	l := &Limiter{
		config:     config,
		buckets:    make(map[string]*TokenBucket),
		lastAccess: make(map[string]time.Time),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		l.stop = make(chan struct{})
		go l.cleanupLoop(config.CleanupInterval)
	}
	return l
}

// Allow reports whether a request from clientID to the given path/method
// may proceed.
func (l *Limiter) Allow(clientID, path, method string) bool {
	if !l.config.Enabled {
		return true
	}

	ec := l.config.match(path, method)
	if ec == nil || ec.Limit <= 0 {
		return true
	}

	key := clientID + ":" + ec.Path + ":" + method
	l.mu.Lock()
	bucket, ok := l.buckets[key]
	if !ok {
		burst := ec.Burst
		if burst <= 0 {
			burst = ec.Limit
		}
		bucket = newTokenBucket(burst, float64(ec.Limit)/ec.Window.Seconds())
		l.buckets[key] = bucket
	}
	l.lastAccess[key] = time.Now()
	l.mu.Unlock()

	return bucket.allow()
}

// Stop terminates the background cleanup goroutine.
func (l *Limiter) Stop() {
	if l.stop != nil {
		close(l.stop)
	}
}

// cleanupLoop evicts buckets idle for more than twice the cleanup interval.
func (l *Limiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			l.mu.Lock()
			for key, last := range l.lastAccess {
				if now.Sub(last) > 2*interval {
					delete(l.buckets, key)
					delete(l.lastAccess, key)
				}
			}
			l.mu.Unlock()
		}
	}
}
