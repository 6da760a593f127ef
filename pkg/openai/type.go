package openai

import pkghttp "embeddings-srv/pkg/http"

// Config configures an OpenAI compatible embeddings client.
// Empty Endpoint and Model are taken from the provider preset.
type Config struct {
	Provider string
	APIKey   string
	Endpoint string
	Model    string
	HTTP     pkghttp.ClientConfig
}

// Request defines the request body for Embedding API
type Request struct {
	Input          []string `json:"input"`
	Model          string   `json:"model"`
	EncodingFormat string   `json:"encoding_format,omitempty"`
}

// Response defines the response body from Embedding API
type Response struct {
	Object string      `json:"object"`
	Data   []Embedding `json:"data"`
	Model  string      `json:"model"`
	Usage  Usage       `json:"usage"`
}

// Embedding represents a single embedding object
type Embedding struct {
	Object    string    `json:"object"`
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

// Usage represents token usage
type Usage struct {
	PromptTokens int `json:"prompt_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

type clientImpl struct {
	provider   string
	apiKey     string
	endpoint   string
	model      string
	httpClient pkghttp.IClient
}
