package ratelimit

import (
	"context"
	"time"
)

// ILimiter decides whether a request identified by key may proceed.
// Implementations are safe for concurrent use.
type ILimiter interface {
	// Allow consumes one request for key. When the request is rejected, retryAfter tells
	// the client how long to wait.
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}
