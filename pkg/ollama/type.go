package ollama

import (
	"time"

	ollama "github.com/ollama/ollama/api"
)

// Config configures the Ollama backed embedder.
type Config struct {
	Host      string
	Model     string
	Truncate  bool
	KeepAlive time.Duration
	Timeout   time.Duration
}

type clientImpl struct {
	client    *ollama.Client
	model     string
	truncate  bool
	keepAlive time.Duration
}
