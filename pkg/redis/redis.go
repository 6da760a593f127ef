package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: invalid port")
)

// Client wraps Redis client with common operations
type Client struct {
	client *redis.Client
}

// New creates a new Redis client and checks the connection.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, ErrHostRequired
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, ErrInvalidPort
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{client: client}, nil
}

// NewFromClient wraps an existing go-redis client.
func NewFromClient(client *redis.Client) *Client {
	return &Client{client: client}
}

// Set stores a key-value pair with TTL
func (c *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Get retrieves a value by key
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

// MGet retrieves several keys in one round trip. Missing keys come back as nil.
func (c *Client) MGet(ctx context.Context, keys ...string) ([]any, error) {
	return c.client.MGet(ctx, keys...).Result()
}

// Delete removes a key
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}

// Exists checks if a key exists
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	count, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// TTL returns the remaining TTL of a key
func (c *Client) TTL(ctx context.Context, key string) (time.Duration, error) {
	return c.client.TTL(ctx, key).Result()
}

// AddToWindow adds member at now to the sorted set key after dropping entries at or before
// now-window. It returns the number of entries left in the window and the oldest one's time.
func (c *Client) AddToWindow(ctx context.Context, key, member string, now time.Time, window time.Duration) (int64, time.Time, error) {
	nowMs := now.UnixMilli()
	cutoff := strconv.FormatInt(nowMs-window.Milliseconds(), 10)

	pipe := c.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", cutoff)
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: member})
	card := pipe.ZCard(ctx, key)
	oldest := pipe.ZRangeWithScores(ctx, key, 0, 0)
	pipe.PExpire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, err
	}

	var oldestAt time.Time
	if zs := oldest.Val(); len(zs) > 0 {
		oldestAt = time.UnixMilli(int64(zs[0].Score))
	}
	return card.Val(), oldestAt, nil
}

// RemoveFromWindow removes member from the sorted set key.
func (c *Client) RemoveFromWindow(ctx context.Context, key, member string) error {
	return c.client.ZRem(ctx, key, member).Err()
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.client.Close()
}

// Ping checks if Redis is reachable
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// GetClient returns the underlying redis.Client for advanced operations
func (c *Client) GetClient() *redis.Client {
	return c.client
}
