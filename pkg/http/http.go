package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func defaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Get performs a GET request.
func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return c.do(ctx, http.MethodGet, url, nil, headers)
}

// Post performs a POST request with JSON body.
func (c *clientImpl) Post(ctx context.Context, url string, body any, headers map[string]string) ([]byte, int, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal body: %w", err)
		}
		payload = b
	}
	return c.do(ctx, http.MethodPost, url, payload, headers)
}

// do sends the request, retrying transport errors and 5xx answers.
// The request is rebuilt on every attempt so the body is never replayed half-read.
func (c *clientImpl) do(ctx context.Context, method, url string, payload []byte, headers map[string]string) ([]byte, int, error) {
	var lastErr error
	var lastStatus int
	var lastBody []byte

	for attempt := 0; attempt <= c.config.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			case <-time.After(c.config.RetryWait):
			}
		}

		body, status, err := c.once(ctx, method, url, payload, headers)
		if err == nil && status < http.StatusInternalServerError {
			return body, status, nil
		}
		if ctx.Err() != nil {
			return nil, 0, ctx.Err()
		}
		lastErr, lastStatus, lastBody = err, status, body
	}

	if lastErr != nil {
		return nil, 0, fmt.Errorf("request failed after %d retries: %w", c.config.Retries, lastErr)
	}
	return lastBody, lastStatus, nil
}

func (c *clientImpl) once(ctx context.Context, method, url string, payload []byte, headers map[string]string) ([]byte, int, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}
