package redisrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// FixedWindowLimiter counts hits per key in fixed time windows. The counter
// key carries the window TTL, so stale windows expire on their own.
type FixedWindowLimiter struct {
	rdb    *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

func NewFixedWindowLimiter(
	rdb *redis.Client,
	prefix string,
	limit int64,
	window time.Duration,
) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		rdb:    rdb,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

func (l *FixedWindowLimiter) key(suffix string) string {
	window := time.Now().UnixMilli() / l.window.Milliseconds()
	return fmt.Sprintf("%s:%s:%d", l.prefix, suffix, window)
}

// Allow registers a hit for suffix and reports whether it stays within the
// window limit. INCR is atomic, so concurrent hits cannot slip past the limit.
func (l *FixedWindowLimiter) Allow(ctx context.Context, suffix string) (bool, time.Duration, error) {
	key := l.key(suffix)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, err
	}

	if count == 1 {
		if err := l.rdb.PExpire(ctx, key, l.window).Err(); err != nil {
			return false, 0, err
		}
	}

	if count > l.limit {
		ttl, err := l.rdb.PTTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = l.window
		}
		return false, ttl, nil
	}

	return true, 0, nil
}
