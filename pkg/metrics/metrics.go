package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "embeddings_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "embeddings_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "path"},
	)

	// TextsEmbedded counts texts by model and where the vector came from (backend or cache).
	TextsEmbedded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "embeddings_texts_total",
			Help: "Total number of texts embedded",
		},
		[]string{"model", "source"},
	)

	// InferenceDuration measures backend Embed calls.
	InferenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "embeddings_inference_duration_seconds",
			Help:    "Duration of embedding backend calls in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"model", "outcome"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "embeddings_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)
)

const (
	SourceBackend = "backend"
	SourceCache   = "cache"

	OutcomeSuccess = "success"
	OutcomeError   = "error"
)
