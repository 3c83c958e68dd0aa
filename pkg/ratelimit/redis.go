package ratelimit

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: current_count
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// RedisLimiter counts attempts in Redis; the window starts at the first attempt
type RedisLimiter struct {
	client    goredis.Scripter
	policy    Policy
	keyPrefix string
}

// NewRedisLimiter creates a limiter storing counters under keyPrefix+key
func NewRedisLimiter(client goredis.Scripter, keyPrefix string, policy Policy) *RedisLimiter {
	return &RedisLimiter{client: client, policy: policy, keyPrefix: keyPrefix}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	ttlSeconds := int(l.policy.Window.Seconds())

	count, err := l.client.Eval(ctx, rateLimitLuaScript, []string{l.keyPrefix + key}, ttlSeconds).Int64()
	if err != nil {
		return false, fmt.Errorf("redis rate limit eval failed: %w", err)
	}
	return count <= int64(l.policy.MaxAttempts), nil
}
