package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"embeddings-srv/pkg/embedder"
	pkghttp "embeddings-srv/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, provider string, h http.HandlerFunc) embedder.IEmbedder {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(Config{
		Provider: provider,
		APIKey:   "secret",
		Endpoint: srv.URL,
		HTTP:     pkghttp.ClientConfig{Timeout: time.Second, Retries: 0, RetryWait: time.Millisecond},
	})
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	t.Run("preset defaults", func(t *testing.T) {
		c, err := New(Config{Provider: ProviderMistral, APIKey: "k"})
		require.NoError(t, err)
		assert.Equal(t, "mistral-embed", c.Model())
		assert.Equal(t, Presets[ProviderMistral].Endpoint, c.(*clientImpl).endpoint)
	})

	t.Run("api key required", func(t *testing.T) {
		_, err := New(Config{Provider: ProviderOpenAI})
		assert.Error(t, err)
	})

	t.Run("unknown provider without endpoint", func(t *testing.T) {
		_, err := New(Config{Provider: "acme", APIKey: "k"})
		assert.Error(t, err)
	})
}

func TestEmbed(t *testing.T) {
	var got Request
	var auth string
	c := newTestClient(t, ProviderOpenAI, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		// Out of order on purpose.
		_ = json.NewEncoder(w).Encode(Response{Data: []Embedding{
			{Index: 1, Embedding: []float32{0, 1}},
			{Index: 0, Embedding: []float32{1, 0}},
		}})
	})

	vectors, err := c.Embed(context.Background(), []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, []string{"a", "b"}, got.Input)
	assert.Equal(t, "text-embedding-3-small", got.Model)
	assert.Equal(t, EncodingFormatFloat, got.EncodingFormat)
	assert.Equal(t, [][]float32{{1, 0}, {0, 1}}, vectors)
}

func TestEmbedVoyageOmitsEncodingFormat(t *testing.T) {
	var raw map[string]any
	c := newTestClient(t, ProviderVoyage, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&raw)
		_ = json.NewEncoder(w).Encode(Response{Data: []Embedding{{Index: 0, Embedding: []float32{1}}}})
	})

	_, err := c.Embed(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.NotContains(t, raw, "encoding_format")
}

func TestEmbedErrors(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		c := newTestClient(t, ProviderOpenAI, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		_, err := c.Embed(context.Background(), []string{"a"})
		assert.ErrorIs(t, err, embedder.ErrUnauthorized)
	})

	t.Run("bad status", func(t *testing.T) {
		c := newTestClient(t, ProviderOpenAI, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
		_, err := c.Embed(context.Background(), []string{"a"})
		assert.ErrorContains(t, err, "429")
	})

	t.Run("duplicate index", func(t *testing.T) {
		c := newTestClient(t, ProviderOpenAI, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(Response{Data: []Embedding{
				{Index: 0, Embedding: []float32{1}},
				{Index: 0, Embedding: []float32{2}},
			}})
		})
		_, err := c.Embed(context.Background(), []string{"a", "b"})
		assert.Error(t, err)
	})

	t.Run("empty batch", func(t *testing.T) {
		c := newTestClient(t, ProviderOpenAI, func(w http.ResponseWriter, r *http.Request) {
			t.Error("backend must not be called")
		})
		_, err := c.Embed(context.Background(), nil)
		assert.ErrorIs(t, err, embedder.ErrEmptyBatch)
	})
}

func TestPing(t *testing.T) {
	c := newTestClient(t, ProviderOpenAI, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Response{Data: []Embedding{{Index: 0, Embedding: []float32{0.5}}}})
	})
	assert.NoError(t, c.Ping(context.Background()))
}
