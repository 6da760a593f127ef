package ollama

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"embeddings-srv/pkg/embedder"

	ollama "github.com/ollama/ollama/api"
)

// New creates an embedder that runs the model on an Ollama server.
func New(cfg Config) (embedder.IEmbedder, error) {
	host := cfg.Host
	if host == "" {
		host = DefaultHost
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	base, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("ollama: invalid host %q: %w", cfg.Host, err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &clientImpl{
		client:    ollama.NewClient(base, &http.Client{Timeout: timeout}),
		model:     model,
		truncate:  cfg.Truncate,
		keepAlive: cfg.KeepAlive,
	}, nil
}
