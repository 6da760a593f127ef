package embedder

import (
	"context"
	"errors"
)

// IEmbedder turns an ordered batch of texts into vectors, one per text, in the same order.
// Implementations are safe for concurrent use.
type IEmbedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// Model names the model that produced the vectors.
	Model() string
	// Ping reports whether the backend can currently serve requests.
	Ping(ctx context.Context) error
}

var (
	// ErrUnauthorized is wrapped by backends when the provider rejects the API key.
	ErrUnauthorized = errors.New("embedder: invalid API key")
	// ErrEmptyBatch is returned when Embed is called without texts.
	ErrEmptyBatch = errors.New("embedder: at least one text is required")
)
