package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderOllama  = "ollama"
	ProviderOpenAI  = "openai"
	ProviderMistral = "mistral"
	ProviderVoyage  = "voyage"

	RateLimitBackendMemory = "memory"
	RateLimitBackendRedis  = "redis"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Embedding - model backend and cache
	Embedding EmbeddingConfig
	Ollama    OllamaConfig
	OpenAI    OpenAIConfig
	Mistral   HostedProviderConfig
	Voyage    HostedProviderConfig

	// Redis - Caching, rate limiting
	Redis RedisConfig

	// Access control
	CORS      CORSConfig
	RateLimit RateLimitConfig

	// Monitoring & Notification Configuration
	Metrics MetricsConfig
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host         string
	Port         int
	Mode         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// TrustedProxies may set X-Forwarded-For. Empty means the socket address is the client.
	TrustedProxies []string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// EmbeddingConfig selects the backend. An empty Model uses the backend default.
type EmbeddingConfig struct {
	Provider string
	Model    string
	Timeout  time.Duration
	Cache    EmbeddingCacheConfig
}

// EmbeddingCacheConfig controls the Redis vector cache.
type EmbeddingCacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// OllamaConfig is the configuration for the Ollama server hosting the model.
type OllamaConfig struct {
	Host      string
	Truncate  bool
	KeepAlive time.Duration
}

// OpenAIConfig is the configuration for OpenAI. Endpoint may point at any compatible API.
type OpenAIConfig struct {
	APIKey   string
	Endpoint string
}

// HostedProviderConfig holds the credentials of a hosted provider with a fixed endpoint.
type HostedProviderConfig struct {
	APIKey string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// CORSConfig restricts browser origins.
type CORSConfig struct {
	Enabled        bool
	AllowedOrigins []string
}

// RateLimitConfig limits requests per client address.
type RateLimitConfig struct {
	Enabled  bool
	Backend  string
	Requests int
	Window   time.Duration
}

type MetricsConfig struct {
	Enabled bool
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("embeddings-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/embeddings-srv/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper()

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func fromViper() *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ReadTimeout = seconds("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = seconds("http_server.write_timeout")
	cfg.HTTPServer.TrustedProxies = viper.GetStringSlice("http_server.trusted_proxies")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Embedding
	cfg.Embedding.Provider = strings.ToLower(viper.GetString("embedding.provider"))
	cfg.Embedding.Model = viper.GetString("embedding.model")
	cfg.Embedding.Timeout = seconds("embedding.timeout")
	cfg.Embedding.Cache.Enabled = viper.GetBool("embedding.cache.enabled")
	cfg.Embedding.Cache.TTL = seconds("embedding.cache.ttl")

	cfg.Ollama.Host = viper.GetString("ollama.host")
	cfg.Ollama.Truncate = viper.GetBool("ollama.truncate")
	cfg.Ollama.KeepAlive = viper.GetDuration("ollama.keep_alive")

	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.Endpoint = viper.GetString("openai.endpoint")
	cfg.Mistral.APIKey = viper.GetString("mistral.api_key")
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")

	// Redis - Caching, rate limiting
	cfg.Redis.Enabled = viper.GetBool("redis.enabled")
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// CORS & rate limiting
	cfg.CORS.Enabled = viper.GetBool("cors.enabled")
	cfg.CORS.AllowedOrigins = viper.GetStringSlice("cors.allowed_origins")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.Backend = strings.ToLower(viper.GetString("rate_limit.backend"))
	cfg.RateLimit.Requests = viper.GetInt("rate_limit.requests")
	cfg.RateLimit.Window = seconds("rate_limit.window")

	// Monitoring
	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	return cfg
}

func seconds(key string) time.Duration {
	return time.Duration(viper.GetInt(key)) * time.Second
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")
	viper.SetDefault("http_server.read_timeout", 30)
	viper.SetDefault("http_server.write_timeout", 120)
	viper.SetDefault("http_server.trusted_proxies", []string{})

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// 1. Embedding
	viper.SetDefault("embedding.provider", ProviderOllama)
	viper.SetDefault("embedding.model", "")
	viper.SetDefault("embedding.timeout", 60)
	viper.SetDefault("embedding.cache.enabled", false)
	viper.SetDefault("embedding.cache.ttl", 604800) // 7 days

	// 2. Ollama
	viper.SetDefault("ollama.host", "http://127.0.0.1:11434")
	viper.SetDefault("ollama.truncate", true)
	viper.SetDefault("ollama.keep_alive", "5m")

	// 3. Redis
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 4. CORS
	viper.SetDefault("cors.enabled", true)
	viper.SetDefault("cors.allowed_origins", []string{"https://embeddings.svana.name", "http://127.0.0.1:5173"})

	// 5. Rate limiting (30 per minute per client address)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.backend", RateLimitBackendMemory)
	viper.SetDefault("rate_limit.requests", 30)
	viper.SetDefault("rate_limit.window", 60)

	// 6. Monitoring
	viper.SetDefault("metrics.enabled", true)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}

	switch cfg.Embedding.Provider {
	case ProviderOllama:
		if cfg.Ollama.Host == "" {
			return fmt.Errorf("ollama.host is required")
		}
	case ProviderOpenAI:
		if cfg.OpenAI.APIKey == "" {
			return fmt.Errorf("openai.api_key is required")
		}
	case ProviderMistral:
		if cfg.Mistral.APIKey == "" {
			return fmt.Errorf("mistral.api_key is required")
		}
	case ProviderVoyage:
		if cfg.Voyage.APIKey == "" {
			return fmt.Errorf("voyage.api_key is required")
		}
	default:
		return fmt.Errorf("embedding.provider %q is not supported", cfg.Embedding.Provider)
	}

	if cfg.Embedding.Cache.Enabled && !cfg.Redis.Enabled {
		return fmt.Errorf("embedding.cache.enabled requires redis.enabled")
	}

	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required")
		}
	}

	if cfg.CORS.Enabled && len(cfg.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("cors.allowed_origins must have at least one value")
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.Requests <= 0 {
			return fmt.Errorf("rate_limit.requests must be greater than 0")
		}
		if cfg.RateLimit.Window <= 0 {
			return fmt.Errorf("rate_limit.window must be greater than 0")
		}
		switch cfg.RateLimit.Backend {
		case RateLimitBackendMemory:
		case RateLimitBackendRedis:
			if !cfg.Redis.Enabled {
				return fmt.Errorf("rate_limit.backend redis requires redis.enabled")
			}
		default:
			return fmt.Errorf("rate_limit.backend %q is not supported", cfg.RateLimit.Backend)
		}
	}

	return nil
}
