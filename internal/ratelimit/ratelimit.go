// Package ratelimit paces outbound calls with a token bucket.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter implements a token bucket rate limiter
type Limiter struct {
	rate       float64 // tokens per second
	tokens     float64
	burst      float64
	lastUpdate time.Time
	mu         sync.Mutex
}

// New creates a limiter refilling rps tokens per second with room for burst
// tokens. Non-positive values default to one.
func New(rps float64, burst int) *Limiter {
	if rps <= 0 {
		rps = 1.0
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		rate:       rps,
		tokens:     float64(burst),
		burst:      float64(burst),
		lastUpdate: time.Now(),
	}
}

// Unlimited returns nil; a nil *Limiter never blocks
func Unlimited() *Limiter {
	return nil
}

// Wait blocks until a token is available or ctx is done
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return ctx.Err()
	}
	for {
		wait := l.reserve()
		if wait <= 0 {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// reserve takes a token and returns zero, or returns how long until one is due
func (l *Limiter) reserve() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.tokens += now.Sub(l.lastUpdate).Seconds() * l.rate
	if l.tokens > l.burst {
		l.tokens = l.burst
	}
	l.lastUpdate = now

	if l.tokens >= 1.0 {
		l.tokens -= 1.0
		return 0
	}
	return time.Duration((1.0 - l.tokens) / l.rate * float64(time.Second))
}
