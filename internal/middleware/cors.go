package middleware

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const environmentProduction = "production"

// DefaultCORSConfig allows the configured origins. Outside production, loopback origins
// on any port are accepted too so local frontends work without config changes.
func DefaultCORSConfig(environment string, allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", HeaderRequestID},
		ExposeHeaders:    []string{HeaderRequestID, headerRetryAfter},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if environment != environmentProduction {
		cfg.AllowOriginFunc = isLoopbackOrigin
	}
	return cfg
}

// CORS rejects cross-origin requests from origins outside cfg with 403.
// Requests without an Origin header pass through.
func CORS(cfg cors.Config) gin.HandlerFunc {
	return cors.New(cfg)
}

func isLoopbackOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	switch u.Hostname() {
	case "localhost", "127.0.0.1", "::1":
		return u.Scheme == "http" || u.Scheme == "https"
	}
	return false
}
