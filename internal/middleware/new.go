package middleware

import (
	"embeddings-srv/pkg/log"
	"embeddings-srv/pkg/ratelimit"
)

type Middleware struct {
	l       log.Logger
	limiter ratelimit.ILimiter
}

// New builds the per-route middleware set. A nil limiter disables rate limiting.
func New(l log.Logger, limiter ratelimit.ILimiter) Middleware {
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
