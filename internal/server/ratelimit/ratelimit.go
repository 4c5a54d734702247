// Package ratelimit throttles API clients with per-endpoint token buckets.
// Resolving a request can call the Gemini model, so the resolve and chat
// routes carry strict per-client limits while catalog reads share a
// generous default and the health check is never limited.
package ratelimit

import (
	"sync"
	"time"
)

// bucket tracks the budget for one client+endpoint pair. Tokens refill
// continuously at rate per second up to capacity; lastSeen feeds the idle
// cleanup.
type bucket struct {
	mu       sync.Mutex
	capacity float64
	rate     float64
	tokens   float64
	refilled time.Time
	lastSeen time.Time
}

func newBucket(capacity int, rate float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity: float64(capacity),
		rate:     rate,
		tokens:   float64(capacity),
		refilled: now,
		lastSeen: now,
	}
}

// refillLocked advances the bucket to now. Callers hold mu.
func (b *bucket) refillLocked(now time.Time) {
	b.tokens += now.Sub(b.refilled).Seconds() * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.refilled = now
}

// take consumes one token if available, reporting the remaining count and
// the time at which the bucket is full again.
func (b *bucket) take() (ok bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refillLocked(now)
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		ok = true
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < b.capacity {
		missing := b.capacity - b.tokens
		reset = now.Add(time.Duration(missing / b.rate * float64(time.Second)))
	}
	return ok, remaining, reset
}

func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen.Before(cutoff)
}

// Info reports the limit decision for one request, surfaced to clients
// through the X-RateLimit headers and 429 bodies. Limit is zero for
// requests no limit applies to.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter tracks a token bucket per client and endpoint.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config
	ticker  *time.Ticker
	done    chan struct{}
}

// NewLimiter creates a limiter. A nil config enables the built-in
// defaults.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.ticker = time.NewTicker(config.CleanupInterval)
		l.done = make(chan struct{})
		go l.reap()
	}

	return l
}

// Allow decides whether a request from clientID may proceed against the
// given endpoint and method.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	limit := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if limit == nil {
		limit = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if limit.Limit <= 0 {
		// Unlimited endpoint, e.g. the health check.
		return true, Info{Allowed: true}
	}

	b := l.bucket(clientID+":"+method+":"+endpoint, limit)
	ok, remaining, reset := b.take()

	info := Info{
		Allowed:   ok,
		Limit:     limit.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !ok {
		if retry := time.Until(reset); retry > 0 {
			info.RetryAfter = retry
		}
	}
	return ok, info
}

// bucket returns the bucket for key, creating it on first use.
func (l *Limiter) bucket(key string, cfg *EndpointConfig) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		return b
	}

	capacity := cfg.Burst
	if capacity <= 0 {
		capacity = cfg.Limit
	}
	b := newBucket(capacity, float64(cfg.Limit)/cfg.Window.Seconds())
	l.buckets[key] = b
	return b
}

// reap drops buckets idle for over an hour so one-off clients do not
// accumulate forever.
func (l *Limiter) reap() {
	for {
		select {
		case <-l.ticker.C:
			cutoff := time.Now().Add(-time.Hour)
			l.mu.Lock()
			for key, b := range l.buckets {
				if b.idleSince(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		case <-l.done:
			return
		}
	}
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.done != nil {
		close(l.done)
	}
}
