package redis

import (
	"context"
	"fmt"
	"sync"

	"embeddings-srv/config"
	"embeddings-srv/pkg/redis"
)

var (
	instance *redis.Client
	mu       sync.Mutex
)

// Connect initializes and connects to Redis once; later calls return the same client.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := redis.New(redis.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	instance = client
	return instance, nil
}

// Disconnect closes the Redis connection
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
