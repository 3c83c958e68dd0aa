// Package ratelimit implements the fixed-window attempt limiter used by the
// contact form. Every backend satisfies Allow(ctx, key) (bool, error).
package ratelimit

import (
	"time"
)

// Policy is the attempt threshold within a window
type Policy struct {
	MaxAttempts int
	Window      time.Duration
}

// DefaultPolicy allows 3 attempts per 5 minutes
var DefaultPolicy = Policy{MaxAttempts: 3, Window: 5 * time.Minute}

// Entry is the persisted state for one key
type Entry struct {
	Attempts    int   `json:"attempts"`
	LastAttempt int64 `json:"last_attempt"`
}

// apply purges expired entries, then admits or rejects key.
// A key at MaxAttempts is rejected without being incremented.
func apply(entries map[string]Entry, key string, now time.Time, p Policy) bool {
	nowUnix := now.Unix()
	windowSeconds := int64(p.Window / time.Second)

	for k, e := range entries {
		if nowUnix-e.LastAttempt > windowSeconds {
			delete(entries, k)
		}
	}

	e, ok := entries[key]
	if ok && e.Attempts >= p.MaxAttempts {
		return false
	}

	e.Attempts++
	e.LastAttempt = nowUnix
	entries[key] = e
	return true
}
