package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// SendError posts an error embed.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := Embed{
		Title:       title,
		Description: truncate(description),
		Color:       colorError,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		embed.Fields = []EmbedField{{Name: "Error", Value: truncate(err.Error())}}
	}
	return d.send(ctx, WebhookPayload{Username: d.config.DefaultUsername, Embeds: []Embed{embed}})
}

// ReportBug posts an unexpected failure.
func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []Embed{{
			Title:       "Bug report",
			Description: truncate(message),
			Color:       colorBug,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	// An error storm must not get the webhook banned.
	if !d.limiter.Allow() {
		d.l.Warnf(ctx, "pkg.discord.send: %v", ErrThrottled)
		return ErrThrottled
	}

	body, status, err := d.client.Post(ctx, d.webhookURL(), payload, nil)
	if err != nil {
		d.l.Errorf(ctx, "pkg.discord.send: %v", err)
		return err
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		d.l.Errorf(ctx, "pkg.discord.send: unexpected status %d: %s", status, string(body))
		return fmt.Errorf("discord: webhook returned status %d", status)
	}
	return nil
}

func (d *discordImpl) webhookURL() string {
	base := d.baseURL
	if base == "" {
		base = webhookBaseURL
	}
	return fmt.Sprintf("%s/%s/%s", base, d.webhook.ID, d.webhook.Token)
}

func truncate(s string) string {
	if len(s) <= maxDescriptionLength {
		return s
	}
	return s[:maxDescriptionLength] + "..."
}
