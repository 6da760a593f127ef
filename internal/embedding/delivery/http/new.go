package http

import (
	"embeddings-srv/internal/embedding"
	"embeddings-srv/internal/middleware"
	"embeddings-srv/pkg/discord"
	"embeddings-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho embedding HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      embedding.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc embedding.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
