package http

import (
	"embeddings-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("")
	api.Use(mw.RateLimit())
	{
		api.POST("/embeddings", h.Embeddings)
		api.POST("/similarity", h.Similarity)
	}
}
