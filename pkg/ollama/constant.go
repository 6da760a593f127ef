package ollama

import "time"

const (
	DefaultHost = "http://127.0.0.1:11434"
	// DefaultModel is all-MiniLM-L6-v2, 384 dimensions.
	DefaultModel     = "all-minilm"
	DefaultDimension = 384
	DefaultTimeout   = 60 * time.Second
)
