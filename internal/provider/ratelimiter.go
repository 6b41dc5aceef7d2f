package provider

import (
	"context"
	"sync"
	"time"
)

// RateLimiter paces outbound API calls with a token bucket. The bucket holds
// up to burst tokens and regains one token per interval; Wait is the only
// consumer-facing operation.
type RateLimiter struct {
	mu       sync.Mutex
	interval time.Duration
	burst    int
	tokens   float64
	updated  time.Time
}

// NewRateLimiter returns a full bucket of burst tokens that refills at one
// token per interval.
func NewRateLimiter(burst int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		interval: interval,
		burst:    burst,
		tokens:   float64(burst),
		updated:  time.Now(),
	}
}

// Wait consumes a token, sleeping exactly as long as the bucket needs to
// regain one, or returns early when ctx ends.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		delay := r.take()
		if delay <= 0 {
			return nil
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// take consumes a token when one is available, otherwise reports how long
// until the next token accrues. Accrual is fractional so bursts drained
// mid-interval do not lose partial progress.
func (r *RateLimiter) take() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.tokens += float64(now.Sub(r.updated)) / float64(r.interval)
	if r.tokens > float64(r.burst) {
		r.tokens = float64(r.burst)
	}
	r.updated = now

	if r.tokens >= 1 {
		r.tokens--
		return 0
	}
	return time.Duration((1 - r.tokens) * float64(r.interval))
}
