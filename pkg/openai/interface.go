package openai

import (
	"fmt"

	"embeddings-srv/pkg/embedder"
	pkghttp "embeddings-srv/pkg/http"
)

// New creates a client for an OpenAI compatible /v1/embeddings API.
func New(cfg Config) (embedder.IEmbedder, error) {
	preset, ok := Presets[cfg.Provider]
	if !ok && cfg.Endpoint == "" {
		return nil, fmt.Errorf("openai: unknown provider %q and no endpoint", cfg.Provider)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required for provider %q", cfg.Provider)
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = preset.Endpoint
	}
	model := cfg.Model
	if model == "" {
		model = preset.Model
	}
	if model == "" {
		return nil, fmt.Errorf("openai: model is required for provider %q", cfg.Provider)
	}

	httpCfg := cfg.HTTP
	if httpCfg == (pkghttp.ClientConfig{}) {
		httpCfg = pkghttp.DefaultConfig()
	}

	return &clientImpl{
		provider:   cfg.Provider,
		apiKey:     cfg.APIKey,
		endpoint:   endpoint,
		model:      model,
		httpClient: pkghttp.NewClient(httpCfg),
	}, nil
}
