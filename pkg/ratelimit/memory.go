package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter keeps attempts in process memory
type MemoryLimiter struct {
	policy  Policy
	mu      sync.Mutex
	entries map[string]Entry
	now     func() time.Time
}

func NewMemoryLimiter(policy Policy) *MemoryLimiter {
	return &MemoryLimiter{
		policy:  policy,
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return apply(l.entries, key, l.now(), l.policy), nil
}
