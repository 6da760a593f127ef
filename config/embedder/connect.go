package embedder

import (
	"fmt"

	"embeddings-srv/config"
	"embeddings-srv/pkg/embedder"
	pkghttp "embeddings-srv/pkg/http"
	"embeddings-srv/pkg/ollama"
	"embeddings-srv/pkg/openai"
)

// Connect builds the embedding backend selected by embedding.provider.
// The result is created once at startup and shared by every request.
func Connect(cfg *config.Config) (embedder.IEmbedder, error) {
	switch cfg.Embedding.Provider {
	case config.ProviderOllama:
		return ollama.New(ollama.Config{
			Host:      cfg.Ollama.Host,
			Model:     cfg.Embedding.Model,
			Truncate:  cfg.Ollama.Truncate,
			KeepAlive: cfg.Ollama.KeepAlive,
			Timeout:   cfg.Embedding.Timeout,
		})
	case config.ProviderOpenAI:
		return openai.New(hostedConfig(cfg, openai.ProviderOpenAI, cfg.OpenAI.APIKey, cfg.OpenAI.Endpoint))
	case config.ProviderMistral:
		return openai.New(hostedConfig(cfg, openai.ProviderMistral, cfg.Mistral.APIKey, ""))
	case config.ProviderVoyage:
		return openai.New(hostedConfig(cfg, openai.ProviderVoyage, cfg.Voyage.APIKey, ""))
	default:
		return nil, fmt.Errorf("unsupported embedding provider %q", cfg.Embedding.Provider)
	}
}

func hostedConfig(cfg *config.Config, provider, apiKey, endpoint string) openai.Config {
	httpCfg := pkghttp.DefaultConfig()
	if cfg.Embedding.Timeout > 0 {
		httpCfg.Timeout = cfg.Embedding.Timeout
	}
	return openai.Config{
		Provider: provider,
		APIKey:   apiKey,
		Endpoint: endpoint,
		Model:    cfg.Embedding.Model,
		HTTP:     httpCfg,
	}
}
