package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IRedis defines the interface for Redis operations.
// Implementations are safe for concurrent use.
type IRedis interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	MGet(ctx context.Context, keys ...string) ([]any, error)
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
	AddToWindow(ctx context.Context, key, member string, now time.Time, window time.Duration) (int64, time.Time, error)
	RemoveFromWindow(ctx context.Context, key, member string) error
	Close() error
	Ping(ctx context.Context) error
	GetClient() *goredis.Client
}

// ErrNil is returned by Get when the key does not exist.
var ErrNil = goredis.Nil
