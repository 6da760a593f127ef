package main

import (
	"context"
	"fmt"

	"embeddings-srv/config"
	configEmbedder "embeddings-srv/config/embedder"
	configRedis "embeddings-srv/config/redis"
	_ "embeddings-srv/docs" // Import swagger docs
	"embeddings-srv/internal/httpserver"
	"embeddings-srv/pkg/discord"
	"embeddings-srv/pkg/log"
	"embeddings-srv/pkg/ratelimit"
	pkgRedis "embeddings-srv/pkg/redis"
)

// @title       Embeddings Service API
// @description Turns batches of text into sentence embedding vectors.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 4. Initialize Redis (optional, used by the vector cache and the redis rate limiter)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		client, err := configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer configRedis.Disconnect()
		redisClient = client
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 5. Initialize embedding backend
	embedderClient, err := configEmbedder.Connect(cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize embedding backend: ", err)
		return
	}
	logger.Infof(ctx, "Embedding backend %s initialized with model %s", cfg.Embedding.Provider, embedderClient.Model())
	if err := embedderClient.Ping(ctx); err != nil {
		// The server still starts; /ready reports the backend until it comes up.
		logger.Warnf(ctx, "Embedding backend not reachable yet: %v", err)
	}

	// 6. Initialize rate limiter (optional)
	limiter, err := initializeRateLimiter(ctx, cfg.RateLimit, redisClient)
	if err != nil {
		logger.Error(ctx, "Failed to initialize rate limiter: ", err)
		return
	}

	// 7. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:         logger,
		Host:           cfg.HTTPServer.Host,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		TrustedProxies: cfg.HTTPServer.TrustedProxies,

		// Embedding Configuration
		Config:   cfg,
		Embedder: embedderClient,

		// Cache & Rate Limiting Configuration
		RedisClient: redisClient,
		Limiter:     limiter,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// initializeRateLimiter builds the per-client limiter. It returns nil when rate limiting is off.
func initializeRateLimiter(ctx context.Context, cfg config.RateLimitConfig, redisClient pkgRedis.IRedis) (ratelimit.ILimiter, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	limitCfg := ratelimit.Config{
		Requests: cfg.Requests,
		Window:   cfg.Window,
	}
	if cfg.Backend == config.RateLimitBackendRedis {
		return ratelimit.NewRedis(redisClient, limitCfg)
	}
	return ratelimit.NewMemory(ctx, limitCfg)
}
