package ratelimit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileLimiter persists attempts as a JSON object {key: {attempts, last_attempt}}.
// Read-modify-write is guarded only within this process; concurrent writers in
// other processes may occasionally lose an increment.
type FileLimiter struct {
	path   string
	policy Policy
	mu     sync.Mutex
	now    func() time.Time
}

func NewFileLimiter(path string, policy Policy) *FileLimiter {
	return &FileLimiter{path: path, policy: policy, now: time.Now}
}

func (l *FileLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.load()
	if err != nil {
		return false, err
	}

	allowed := apply(entries, key, l.now(), l.policy)

	if err := l.save(entries); err != nil {
		return allowed, err
	}
	return allowed, nil
}

func (l *FileLimiter) load() (map[string]Entry, error) {
	entries := make(map[string]Entry)

	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read rate limit store: %w", err)
	}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode rate limit store: %w", err)
	}
	return entries, nil
}

func (l *FileLimiter) save(entries map[string]Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode rate limit store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(l.path), ".ratelimit-*")
	if err != nil {
		return fmt.Errorf("write rate limit store: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write rate limit store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write rate limit store: %w", err)
	}
	return os.Rename(tmp.Name(), l.path)
}
