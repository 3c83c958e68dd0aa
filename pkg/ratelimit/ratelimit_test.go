package ratelimit

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestMemoryLimiterFixedWindow(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Unix(1_700_000_000, 0)}
	l := NewMemoryLimiter(DefaultPolicy)
	l.now = c.now

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "a@b.com")
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d", i+1)
	}

	ok, _ := l.Allow(ctx, "a@b.com")
	assert.False(t, ok, "fourth attempt inside the window is rejected")

	ok, _ = l.Allow(ctx, "other@b.com")
	assert.True(t, ok, "keys are independent")

	c.t = c.t.Add(5*time.Minute + time.Second)
	ok, _ = l.Allow(ctx, "a@b.com")
	assert.True(t, ok, "expired entry is purged")
}

func TestFileLimiterPersistsAndPurges(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rate_limit.json")
	c := &clock{t: time.Unix(1_700_000_000, 0)}

	l := NewFileLimiter(path, Policy{MaxAttempts: 2, Window: time.Minute})
	l.now = c.now

	ok, err := l.Allow(ctx, "a@b.com")
	require.NoError(t, err)
	assert.True(t, ok)

	c.t = c.t.Add(10 * time.Second)
	ok, err = l.Allow(ctx, "stale@b.com")
	require.NoError(t, err)
	assert.True(t, ok)

	// a second limiter on the same file sees the stored attempts
	l2 := NewFileLimiter(path, Policy{MaxAttempts: 2, Window: time.Minute})
	l2.now = c.now
	ok, _ = l2.Allow(ctx, "a@b.com")
	assert.True(t, ok)
	ok, _ = l2.Allow(ctx, "a@b.com")
	assert.False(t, ok)

	c.t = c.t.Add(2 * time.Minute)
	ok, _ = l2.Allow(ctx, "fresh@b.com")
	assert.True(t, ok)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var stored map[string]Entry
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, map[string]Entry{"fresh@b.com": {Attempts: 1, LastAttempt: c.t.Unix()}}, stored)
}

func TestFileLimiterCorruptStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rate_limit.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileLimiter(path, DefaultPolicy).Allow(context.Background(), "a@b.com")
	assert.Error(t, err)
}

type fakeScripter struct {
	goredis.Scripter
	counts map[string]int64
	err    error
}

func (f *fakeScripter) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *goredis.Cmd {
	if f.err != nil {
		return goredis.NewCmdResult(nil, f.err)
	}
	f.counts[keys[0]]++
	return goredis.NewCmdResult(f.counts[keys[0]], nil)
}

func TestRedisLimiter(t *testing.T) {
	ctx := context.Background()
	fake := &fakeScripter{counts: map[string]int64{}}
	l := NewRedisLimiter(fake, "rl:contact:", Policy{MaxAttempts: 2, Window: time.Minute})

	ok, err := l.Allow(ctx, "a@b.com")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "a@b.com")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "a@b.com")
	assert.False(t, ok)
	assert.Equal(t, int64(3), fake.counts["rl:contact:a@b.com"])
}

func TestRedisLimiterError(t *testing.T) {
	l := NewRedisLimiter(&fakeScripter{err: errors.New("down")}, "rl:", DefaultPolicy)
	_, err := l.Allow(context.Background(), "a@b.com")
	assert.Error(t, err)
}
