package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(b))
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"ok": "yes"})
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{Timeout: time.Second, Retries: 3, RetryWait: time.Millisecond})
	body, status, err := c.Post(context.Background(), srv.URL, map[string]string{"input": "x"}, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"ok":"yes"}`, string(body))
	assert.Equal(t, int32(3), calls.Load())
	for _, b := range bodies {
		assert.JSONEq(t, `{"input":"x"}`, b)
	}
}

func TestPostDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{Timeout: time.Second, Retries: 3, RetryWait: time.Millisecond})
	_, status, err := c.Post(context.Background(), srv.URL, nil, map[string]string{"Authorization": "Bearer k"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetriesExhaustedReturnsLastStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{Timeout: time.Second, Retries: 1, RetryWait: time.Millisecond})
	body, status, err := c.Get(context.Background(), srv.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "upstream down", string(body))
}

func TestCanceledContextStopsRetrying(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(ClientConfig{Timeout: time.Second, Retries: 5, RetryWait: time.Second})
	_, _, err := c.Get(ctx, srv.URL, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
