package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter implements a fixed-window request counter backed by Redis.
// Key format: ratelimit:<scope>:<caller>:<window_start_unix>
//
// The counter and its expiry are set atomically via a pipeline, so a crashed
// request cannot leave an immortal key behind.
type RateLimiter struct {
	client *redis.Client
	window time.Duration
	limit  int64
}

// NewRateLimiter creates a RateLimiter allowing limit requests per window.
func NewRateLimiter(client *redis.Client, window time.Duration, limit int64) *RateLimiter {
	return &RateLimiter{client: client, window: window, limit: limit}
}

// Allow records one request for the caller within the given scope and
// reports whether it is within the limit. Callers over the limit stay
// blocked until the current window rolls over.
func (l *RateLimiter) Allow(ctx context.Context, scope, caller string) (bool, error) {
	key := l.key(scope, caller, time.Now())

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}

	return count.Val() <= l.limit, nil
}

func (l *RateLimiter) key(scope, caller string, now time.Time) string {
	windowStart := now.Unix() - now.Unix()%int64(l.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%s:%d", scope, caller, windowStart)
}
