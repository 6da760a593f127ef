package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"embeddings-srv/pkg/embedder"
)

// Embed generates embeddings for the given texts.
func (c *clientImpl) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, embedder.ErrEmptyBatch
	}

	req := Request{
		Input: texts,
		Model: c.model,
	}
	// Voyage rejects the encoding_format values OpenAI and Mistral accept.
	if c.provider != ProviderVoyage {
		req.EncodingFormat = EncodingFormatFloat
	}

	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}

	body, statusCode, err := c.httpClient.Post(ctx, c.endpoint, req, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s API: %w", c.provider, err)
	}

	switch {
	case statusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%s: %w", c.provider, embedder.ErrUnauthorized)
	case statusCode != http.StatusOK:
		return nil, fmt.Errorf("%s API returned status: %d, body: %s", c.provider, statusCode, string(body))
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s response: %w", c.provider, err)
	}

	// Providers are not required to return data in input order.
	embeddings := make([][]float32, len(resp.Data))
	for _, item := range resp.Data {
		if item.Index < 0 || item.Index >= len(embeddings) || embeddings[item.Index] != nil {
			return nil, fmt.Errorf("%s API returned invalid index %d", c.provider, item.Index)
		}
		embeddings[item.Index] = item.Embedding
	}

	return embeddings, nil
}

// Model returns the configured model name.
func (c *clientImpl) Model() string {
	return c.model
}

// Ping embeds a short fixed string.
func (c *clientImpl) Ping(ctx context.Context) error {
	vectors, err := c.Embed(ctx, []string{pingText})
	if err != nil {
		return err
	}
	if len(vectors) != 1 || len(vectors[0]) == 0 {
		return fmt.Errorf("%s API returned no vector for ping", c.provider)
	}
	return nil
}
