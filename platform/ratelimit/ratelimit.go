// Package ratelimit bounds repeated public form submissions per identity
// within a time window. Limiters are constructed explicitly and injected
// where throttling is needed; there is no ambient singleton.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether a submission identified by key may proceed.
// Implementations must be safe for concurrent use.
type Limiter interface {
	// Allow reports whether the caller identified by key is within its
	// submission budget. It returns an error only on infrastructure
	// failure; callers should fail open in that case.
	Allow(ctx context.Context, key string) (bool, error)
}

// Memory is an in-process Limiter backed by a token bucket per key.
// Suitable for single-instance deployments.
type Memory struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
}

// NewMemory creates a Memory limiter allowing limit submissions per window.
func NewMemory(limit int, window time.Duration) *Memory {
	return &Memory{
		rate:  rate.Limit(float64(limit) / window.Seconds()),
		burst: limit,
	}
}

// Allow consumes one token for key, creating the bucket on first use.
func (m *Memory) Allow(_ context.Context, key string) (bool, error) {
	return m.limiterFor(key).Allow(), nil
}

func (m *Memory) limiterFor(key string) *rate.Limiter {
	if existing, ok := m.limiters.Load(key); ok {
		return existing.(*rate.Limiter)
	}
	created := rate.NewLimiter(m.rate, m.burst)
	actual, _ := m.limiters.LoadOrStore(key, created)
	return actual.(*rate.Limiter)
}
