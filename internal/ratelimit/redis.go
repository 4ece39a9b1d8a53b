package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"jobboard-backend/internal/logger"
)

// fixed window counter: the first hit in a window sets the expiry
const fixedWindowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// Limiter decides whether another request for key fits in the current window.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

type RedisLimiter struct {
	client  redis.Scripter
	limit   int
	window  time.Duration
	prefix  string
	timeout time.Duration
	script  *redis.Script
}

// NewRedisLimiter returns nil when client is nil; a nil *RedisLimiter allows everything.
func NewRedisLimiter(client redis.Scripter, limit int, window time.Duration, prefix string) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client:  client,
		limit:   limit,
		window:  window,
		prefix:  prefix,
		timeout: 250 * time.Millisecond,
		script:  redis.NewScript(fixedWindowScript),
	}
}

// Allow fails open: a Redis error lets the request through.
func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || l.limit <= 0 || l.window <= 0 {
		return true
	}
	redisKey := key
	if l.prefix != "" {
		redisKey = l.prefix + ":" + key
	}
	ttl := l.window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{redisKey}, ttl, l.limit).Int64()
	if err != nil {
		logger.Warn("Rate limiter unavailable, allowing request", "key", redisKey, "error", err)
		return true
	}
	return allowed == 1
}
