package httpserver

import (
	"context"

	"embeddings-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const environmentProduction = "production"

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.limiter)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	ctx := context.Background()
	if err := srv.setupEmbeddingDomain(ctx, srv.gin.Group(""), mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	ctx := context.Background()

	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.RequestID())

	if srv.config.Metrics.Enabled {
		srv.gin.Use(middleware.Metrics())
	}

	if srv.config.CORS.Enabled {
		corsConfig := middleware.DefaultCORSConfig(srv.environment, srv.config.CORS.AllowedOrigins)
		srv.gin.Use(middleware.CORS(corsConfig))

		// Log CORS mode for visibility
		if srv.environment == environmentProduction {
			srv.l.Infof(ctx, "CORS mode: production (origins %v only)", srv.config.CORS.AllowedOrigins)
		} else {
			srv.l.Infof(ctx, "CORS mode: %s (origins %v plus loopback)", srv.environment, srv.config.CORS.AllowedOrigins)
		}
	} else {
		srv.l.Infof(ctx, "CORS disabled")
	}

	if srv.limiter != nil {
		srv.l.Infof(ctx, "Rate limiting: %d requests per %s per client (%s)",
			srv.config.RateLimit.Requests, srv.config.RateLimit.Window, srv.config.RateLimit.Backend)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.config.Metrics.Enabled {
		srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Swagger UI and docs (non-production only)
	if srv.environment != environmentProduction {
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("doc.json"), // Use relative path
			ginSwagger.DefaultModelsExpandDepth(-1),
		))
	}
}
