package openai

const (
	ProviderOpenAI  = "openai"
	ProviderMistral = "mistral"
	ProviderVoyage  = "voyage"

	EncodingFormatFloat = "float"

	// pingText is embedded by Ping.
	pingText = "ping"
)

// Preset is the endpoint and default model of a hosted provider.
type Preset struct {
	Endpoint string
	Model    string
}

// Presets of the OpenAI compatible providers.
var Presets = map[string]Preset{
	ProviderOpenAI: {
		Endpoint: "https://api.openai.com/v1/embeddings",
		Model:    "text-embedding-3-small",
	},
	ProviderMistral: {
		Endpoint: "https://api.mistral.ai/v1/embeddings",
		Model:    "mistral-embed",
	},
	ProviderVoyage: {
		Endpoint: "https://api.voyageai.com/v1/embeddings",
		Model:    "voyage-multilingual-2",
	},
}
