package discord

import (
	"context"
	"time"

	pkghttp "embeddings-srv/pkg/http"
	"embeddings-srv/pkg/log"

	"golang.org/x/time/rate"
)

// IDiscord defines the interface for Discord webhook service.
// Implementations are safe for concurrent use.
type IDiscord interface {
	SendError(ctx context.Context, title, description string, err error) error
	ReportBug(ctx context.Context, message string) error
}

// DiscordWebhook contains webhook information for Discord API.
type DiscordWebhook struct {
	ID    string
	Token string
}

// New creates a new Discord service. Returns the interface.
func New(l log.Logger, webhook *DiscordWebhook) (IDiscord, error) {
	if webhook == nil || webhook.ID == "" || webhook.Token == "" {
		return nil, errWebhookRequired
	}
	cfg := DefaultConfig()
	return &discordImpl{
		l:       l,
		webhook: webhook,
		config:  cfg,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.ReportsPerMinute)), cfg.ReportBurst),
		client: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   cfg.Timeout,
			Retries:   cfg.RetryCount,
			RetryWait: cfg.RetryDelay,
		}),
	}, nil
}
