package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	embeddingHTTP "embeddings-srv/internal/embedding/delivery/http"
	"embeddings-srv/internal/embedding/repository"
	embeddingRedis "embeddings-srv/internal/embedding/repository/redis"
	embeddingUsecase "embeddings-srv/internal/embedding/usecase"
	"embeddings-srv/internal/middleware"
)

// setupEmbeddingDomain initializes embedding domain (repo -> usecase -> delivery)
func (srv HTTPServer) setupEmbeddingDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	// Repository is only used when the vector cache is on
	var cacheRepo repository.Repository
	if srv.config.Embedding.Cache.Enabled {
		cacheRepo = embeddingRedis.New(srv.redisClient, srv.l)
	}

	uc := embeddingUsecase.New(cacheRepo, srv.embedder, srv.l, embeddingUsecase.Config{
		CacheTTL: srv.config.Embedding.Cache.TTL,
	})

	handler := embeddingHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Embedding domain registered (model %s, cache %t)",
		srv.embedder.Model(), cacheRepo != nil)
	return nil
}
