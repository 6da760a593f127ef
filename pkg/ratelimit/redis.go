package ratelimit

import (
	"context"
	"fmt"
	"time"

	pkgRedis "embeddings-srv/pkg/redis"

	"github.com/google/uuid"
)

const redisPrefix = "ratelimit:"

// NewRedis returns a sliding log limiter shared by every replica using the same Redis.
func NewRedis(redis pkgRedis.IRedis, cfg Config) (ILimiter, error) {
	if cfg.Requests <= 0 || cfg.Window <= 0 {
		return nil, ErrInvalidConfig
	}
	return &redisLimiter{
		cfg:    cfg,
		redis:  redis,
		prefix: redisPrefix,
		now:    time.Now,
		member: uuid.NewString,
	}, nil
}

// Allow records the request first and takes it back when it is over the limit, so
// concurrent requests can only see too many entries, never too few.
func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := l.now()
	member := l.member()
	redisKey := l.prefix + key

	count, oldest, err := l.redis.AddToWindow(ctx, redisKey, member, now, l.cfg.Window)
	if err != nil {
		return false, 0, fmt.Errorf("ratelimit: redis add: %w", err)
	}
	if count <= int64(l.cfg.Requests) {
		return true, 0, nil
	}

	// A failed removal only over-counts this key until the entry leaves the window.
	_ = l.redis.RemoveFromWindow(ctx, redisKey, member)

	retryAfter := l.cfg.Window
	if !oldest.IsZero() {
		retryAfter = oldest.Add(l.cfg.Window).Sub(now)
	}
	return false, retryAfter, nil
}
