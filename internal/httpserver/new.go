package httpserver

import (
	"errors"
	"fmt"
	"time"

	"embeddings-srv/config"
	"embeddings-srv/pkg/discord"
	"embeddings-srv/pkg/embedder"
	"embeddings-srv/pkg/log"
	"embeddings-srv/pkg/ratelimit"
	pkgRedis "embeddings-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin          *gin.Engine
	l            log.Logger
	host         string
	port         int
	mode         string
	environment  string
	readTimeout  time.Duration
	writeTimeout time.Duration

	// Embedding Configuration
	config   *config.Config
	embedder embedder.IEmbedder

	// Cache & Rate Limiting Configuration (optional)
	redisClient pkgRedis.IRedis
	limiter     ratelimit.ILimiter

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger       log.Logger
	Host         string
	Port         int
	Mode         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// TrustedProxies may set X-Forwarded-For; empty keys clients by socket address
	TrustedProxies []string

	// Embedding Configuration
	Config   *config.Config
	Embedder embedder.IEmbedder

	// Cache & Rate Limiting Configuration (optional)
	RedisClient pkgRedis.IRedis
	Limiter     ratelimit.ILimiter

	// Monitoring & Notification Configuration (optional)
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:            logger,
		gin:          gin.Default(),
		host:         cfg.Host,
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		readTimeout:  cfg.ReadTimeout,
		writeTimeout: cfg.WriteTimeout,

		// Embedding Configuration
		config:   cfg.Config,
		embedder: cfg.Embedder,

		// Cache & Rate Limiting Configuration
		redisClient: cfg.RedisClient,
		limiter:     cfg.Limiter,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	// gin trusts every proxy unless told otherwise
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Embedding Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.embedder == nil {
		return errors.New("embedder is required")
	}
	if srv.config.Embedding.Cache.Enabled && srv.redisClient == nil {
		return errors.New("redisClient is required when the embedding cache is enabled")
	}

	// Redis, limiter and discord are optional

	return nil
}
