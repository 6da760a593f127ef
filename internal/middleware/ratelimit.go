package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"embeddings-srv/pkg/metrics"
	"embeddings-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	headerRetryAfter       = "Retry-After"
	messageRateLimitExceed = "Rate limit exceeded"
)

// RateLimit caps requests per client IP. When the limiter itself fails the request is let through.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		ip := c.ClientIP()

		allowed, retryAfter, err := m.limiter.Allow(ctx, ip)
		if err != nil {
			m.l.Warnf(ctx, "middleware.RateLimit: limiter failed for %s, allowing request: %v", ip, err)
			c.Next()
			return
		}
		if !allowed {
			metrics.RateLimited.Inc()
			m.l.Infof(ctx, "middleware.RateLimit: rejected %s, retry after %s", ip, retryAfter)
			c.Header(headerRetryAfter, strconv.Itoa(retryAfterSeconds(retryAfter)))
			response.ErrorWithStatus(c, http.StatusTooManyRequests, messageRateLimitExceed)
			c.Abort()
			return
		}

		c.Next()
	}
}

func retryAfterSeconds(d time.Duration) int {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
