package ollama

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"embeddings-srv/pkg/embedder"

	ollama "github.com/ollama/ollama/api"
)

// Embed runs the whole batch through /api/embed in one call.
func (c *clientImpl) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, embedder.ErrEmptyBatch
	}

	truncate := c.truncate
	req := &ollama.EmbedRequest{
		Model:    c.model,
		Input:    texts,
		Truncate: &truncate,
	}
	if c.keepAlive > 0 {
		req.KeepAlive = &ollama.Duration{Duration: c.keepAlive}
	}

	resp, err := c.client.Embed(ctx, req)
	if err != nil {
		var statusErr ollama.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("ollama: %w", embedder.ErrUnauthorized)
		}
		return nil, fmt.Errorf("ollama embed failed: %w", err)
	}

	return resp.Embeddings, nil
}

// Model returns the configured model name.
func (c *clientImpl) Model() string {
	return c.model
}

// Ping checks the server is up and has the model pulled.
func (c *clientImpl) Ping(ctx context.Context) error {
	if err := c.client.Heartbeat(ctx); err != nil {
		return fmt.Errorf("ollama heartbeat failed: %w", err)
	}

	list, err := c.client.List(ctx)
	if err != nil {
		return fmt.Errorf("ollama list failed: %w", err)
	}

	want := baseModelName(c.model)
	for _, m := range list.Models {
		if baseModelName(m.Name) == want {
			return nil
		}
	}
	return fmt.Errorf("ollama: model %s not found", c.model)
}

// baseModelName drops the tag: "all-minilm:latest" -> "all-minilm".
func baseModelName(name string) string {
	return strings.SplitN(name, ":", 2)[0]
}
