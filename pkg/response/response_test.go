package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgErrors "embeddings-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/embeddings", nil)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) ErrorResp {
	t.Helper()
	var body ErrorResp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestError(t *testing.T) {
	t.Run("http error keeps status and message", func(t *testing.T) {
		c, w := newContext()
		Error(c, pkgErrors.NewHTTPError(400, "No inputs provided"), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No inputs provided", decode(t, w).Error)
	})

	t.Run("plain error is a bad request", func(t *testing.T) {
		c, w := newContext()
		Error(c, errors.New("json: cannot unmarshal"), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, MessageBadRequest, decode(t, w).Error)
	})

	t.Run("server error is reported", func(t *testing.T) {
		c, w := newContext()
		d := &fakeDiscord{reported: make(chan string, 1)}
		Error(c, pkgErrors.NewHTTPError(502, "Failed to generate embeddings"), d)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, <-d.reported, "502")
	})
}

func TestPanicError(t *testing.T) {
	c, w := newContext()
	PanicError(c, "boom", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, MessageInternalError, decode(t, w).Error)
}

type fakeDiscord struct {
	reported chan string
}

func (f *fakeDiscord) ReportBug(_ context.Context, message string) error {
	f.reported <- message
	return nil
}

func (f *fakeDiscord) SendError(_ context.Context, _, _ string, _ error) error { return nil }
