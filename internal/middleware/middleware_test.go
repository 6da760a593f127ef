package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"embeddings-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeLimiter struct {
	allowed    bool
	retryAfter time.Duration
	err        error
	keys       []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	f.keys = append(f.keys, key)
	return f.allowed, f.retryAfter, f.err
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.POST("/embeddings", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/boom", func(c *gin.Context) { panic("boom") })
	return r
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	t.Run("rejects with 429", func(t *testing.T) {
		limiter := &fakeLimiter{allowed: false, retryAfter: 1500 * time.Millisecond}
		r := newRouter(New(log.NewNop(), limiter).RateLimit())

		req := httptest.NewRequest(http.MethodPost, "/embeddings", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		w := do(r, req)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.JSONEq(t, `{"error":"Rate limit exceeded"}`, w.Body.String())
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
		assert.Equal(t, []string{"10.0.0.7"}, limiter.keys)
	})

	t.Run("allows", func(t *testing.T) {
		limiter := &fakeLimiter{allowed: true}
		r := newRouter(New(log.NewNop(), limiter).RateLimit())

		w := do(r, httptest.NewRequest(http.MethodPost, "/embeddings", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("fails open", func(t *testing.T) {
		limiter := &fakeLimiter{err: errors.New("redis down")}
		r := newRouter(New(log.NewNop(), limiter).RateLimit())

		w := do(r, httptest.NewRequest(http.MethodPost, "/embeddings", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("disabled", func(t *testing.T) {
		r := newRouter(New(log.NewNop(), nil).RateLimit())

		w := do(r, httptest.NewRequest(http.MethodPost, "/embeddings", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(200*time.Millisecond))
	assert.Equal(t, 60, retryAfterSeconds(time.Minute))
}

func TestRecovery(t *testing.T) {
	r := newRouter(Recovery(log.NewNop(), nil))

	w := do(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/id", func(c *gin.Context) {
		seen = log.GetRequestIDFromContext(c.Request.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w := do(r, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))

	w = do(r, httptest.NewRequest(http.MethodGet, "/id", nil))
	require.NotEmpty(t, seen)
	assert.NotEqual(t, "abc-123", seen)
	assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
}

func TestMetrics(t *testing.T) {
	r := newRouter(Metrics())

	w := do(r, httptest.NewRequest(http.MethodPost, "/embeddings", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS(t *testing.T) {
	origins := []string{"https://embeddings.svana.name", "http://127.0.0.1:5173"}

	request := func(r http.Handler, method, origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/embeddings", nil)
		req.Header.Set("Origin", origin)
		if method == http.MethodOptions {
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		}
		return do(r, req)
	}

	t.Run("production", func(t *testing.T) {
		r := newRouter(CORS(DefaultCORSConfig("production", origins)))

		w := request(r, http.MethodPost, "https://embeddings.svana.name")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://embeddings.svana.name", w.Header().Get("Access-Control-Allow-Origin"))

		w = request(r, http.MethodOptions, "http://127.0.0.1:5173")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = request(r, http.MethodPost, "https://evil.example")
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = request(r, http.MethodPost, "http://localhost:3000")
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = do(r, httptest.NewRequest(http.MethodPost, "/embeddings", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("development allows loopback", func(t *testing.T) {
		r := newRouter(CORS(DefaultCORSConfig("development", origins)))

		w := request(r, http.MethodPost, "http://localhost:3000")
		assert.Equal(t, http.StatusOK, w.Code)

		w = request(r, http.MethodPost, "https://evil.example")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestIsLoopbackOrigin(t *testing.T) {
	assert.True(t, isLoopbackOrigin("http://localhost:5173"))
	assert.True(t, isLoopbackOrigin("http://[::1]:8080"))
	assert.False(t, isLoopbackOrigin("ftp://localhost"))
	assert.False(t, isLoopbackOrigin("http://10.0.0.1"))
}
