package ratelimit

import (
	"sync"
	"time"

	pkgRedis "embeddings-srv/pkg/redis"
)

// Config is "Requests per Window" for every key.
type Config struct {
	Requests int
	Window   time.Duration
}

// visitor keeps the admission times inside the current window, oldest first.
type visitor struct {
	hits     []time.Time
	lastSeen time.Time
}

type memoryLimiter struct {
	cfg      Config
	mu       sync.Mutex
	visitors map[string]*visitor
	idleTTL  time.Duration
	now      func() time.Time
}

type redisLimiter struct {
	cfg    Config
	redis  pkgRedis.IRedis
	prefix string
	now    func() time.Time
	member func() string
}
