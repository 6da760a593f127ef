package discord

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"embeddings-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New(log.NewNop(), &DiscordWebhook{ID: "id"})
	assert.ErrorIs(t, err, errWebhookRequired)

	d, err := New(log.NewNop(), &DiscordWebhook{ID: "id", Token: "token"})
	require.NoError(t, err)
	assert.NotNil(t, d)
}

func TestSendError(t *testing.T) {
	var got WebhookPayload
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d, err := New(log.NewNop(), &DiscordWebhook{ID: "id", Token: "token"})
	require.NoError(t, err)
	d.(*discordImpl).baseURL = srv.URL

	require.NoError(t, d.SendError(context.Background(), "Embed failed", "ollama unreachable", errors.New("dial tcp")))

	assert.Equal(t, "/id/token", path)
	require.Len(t, got.Embeds, 1)
	assert.Equal(t, "Embed failed", got.Embeds[0].Title)
	assert.Equal(t, "dial tcp", got.Embeds[0].Fields[0].Value)
}

func TestReportBugStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	d, err := New(log.NewNop(), &DiscordWebhook{ID: "id", Token: "token"})
	require.NoError(t, err)
	d.(*discordImpl).baseURL = srv.URL

	assert.Error(t, d.ReportBug(context.Background(), "boom"))
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", maxDescriptionLength+10)
	assert.Len(t, truncate(long), maxDescriptionLength+3)
	assert.Equal(t, "short", truncate("short"))
}

func TestReportsAreThrottled(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d, err := New(log.NewNop(), &DiscordWebhook{ID: "id", Token: "token"})
	require.NoError(t, err)
	d.(*discordImpl).baseURL = srv.URL

	burst := DefaultConfig().ReportBurst
	for i := 0; i < burst; i++ {
		require.NoError(t, d.ReportBug(context.Background(), "boom"))
	}
	assert.ErrorIs(t, d.ReportBug(context.Background(), "boom"), ErrThrottled)
	assert.Equal(t, int32(burst), atomic.LoadInt32(&hits))
}
