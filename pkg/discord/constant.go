package discord

import (
	"errors"
	"time"
)

const (
	webhookBaseURL = "https://discord.com/api/webhooks"

	colorError = 0xE74C3C
	colorBug   = 0xE67E22

	// Discord rejects descriptions longer than 4096 characters.
	maxDescriptionLength = 4000
)

var (
	errWebhookRequired = errors.New("discord: webhook id and token are required")
	ErrThrottled       = errors.New("discord: report dropped, webhook rate exceeded")
)

// DefaultConfig returns default Config.
func DefaultConfig() Config {
	return Config{
		Timeout:          10 * time.Second,
		RetryCount:       2,
		RetryDelay:       500 * time.Millisecond,
		DefaultUsername:  "embeddings-srv",
		ReportsPerMinute: 20,
		ReportBurst:      5,
	}
}
