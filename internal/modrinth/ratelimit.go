package modrinth

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter implements token bucket rate limiting. It is shared by every
// request a Client makes, including concurrent ones.
type RateLimiter struct {
	mu         sync.Mutex
	limit      int
	interval   time.Duration
	tokens     int
	lastRefill time.Time
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:      limit,
		interval:   interval,
		tokens:     limit,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(r.lastRefill)
	if elapsed >= r.interval {
		r.tokens = r.limit
		r.lastRefill = now
	}

	if r.tokens <= 0 {
		waitTime := r.interval - elapsed
		r.mu.Unlock()

		timer := time.NewTimer(waitTime)
		select {
		case <-timer.C:
			r.mu.Lock()
			r.tokens = r.limit
			r.lastRefill = time.Now()
		case <-ctx.Done():
			timer.Stop()
			r.mu.Lock()
			return ctx.Err()
		}
	}

	r.tokens--
	return nil
}

// Remaining returns the number of tokens currently available.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tokens
}

// UpdateFromHeaders syncs the bucket with the registry's own accounting.
// X-Ratelimit-Reset is the number of seconds until the window resets.
func (r *RateLimiter) UpdateFromHeaders(headers http.Header) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if remaining := headers.Get("X-Ratelimit-Remaining"); remaining != "" {
		if n, err := strconv.Atoi(remaining); err == nil && n >= 0 {
			r.tokens = n
		}
	}

	if reset := headers.Get("X-Ratelimit-Reset"); reset != "" {
		if secs, err := strconv.Atoi(reset); err == nil && secs >= 0 {
			resetAt := time.Now().Add(time.Duration(secs) * time.Second)
			r.lastRefill = resetAt.Add(-r.interval)
		}
	}
}
