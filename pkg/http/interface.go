package http

import "context"

// IClient defines the interface for HTTP client with retry and timeout.
// Implementations are safe for concurrent use.
type IClient interface {
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error)
	Post(ctx context.Context, url string, body any, headers map[string]string) ([]byte, int, error)
}

// NewClient creates a new HTTP client. Zero fields in cfg fall back to DefaultConfig.
func NewClient(cfg ClientConfig) IClient {
	def := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = def.RetryWait
	}
	return &clientImpl{
		client: defaultHTTPClient(cfg.Timeout),
		config: cfg,
	}
}
