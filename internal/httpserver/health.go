package httpserver

import (
	"context"
	"net/http"
	"time"

	"embeddings-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "embeddings-srv"

	readyTimeout = 5 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests (embedding backend + Redis when used).
// @Summary Readiness Check
// @Description Check if the embedding backend (and Redis, when enabled) can serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := srv.embedder.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: embedder ping failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "not ready",
			"message": "Embedding backend unavailable",
			"error":   err.Error(),
		})
		return
	}

	body := gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
		"model":   srv.embedder.Model(),
	}

	if srv.redisClient != nil {
		if err := srv.redisClient.Ping(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": "Redis connection failed",
				"error":   err.Error(),
			})
			return
		}
		body["redis"] = "connected"
	}

	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
