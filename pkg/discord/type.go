package discord

import (
	"time"

	pkghttp "embeddings-srv/pkg/http"
	"embeddings-srv/pkg/log"

	"golang.org/x/time/rate"
)

// Config contains configuration for Discord service.
type Config struct {
	Timeout         time.Duration
	RetryCount      int
	RetryDelay      time.Duration
	DefaultUsername string
	// ReportsPerMinute caps webhook posts; reports over the cap are dropped.
	ReportsPerMinute int
	ReportBurst      int
}

// discordImpl implements IDiscord.
type discordImpl struct {
	l       log.Logger
	webhook *DiscordWebhook
	config  Config
	client  pkghttp.IClient
	limiter *rate.Limiter
	baseURL string
}

// EmbedField represents a field in a Discord embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Embed represents a Discord embed message.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// WebhookPayload represents the payload sent to Discord webhook.
type WebhookPayload struct {
	Content  string  `json:"content,omitempty"`
	Username string  `json:"username,omitempty"`
	Embeds   []Embed `json:"embeds,omitempty"`
}
