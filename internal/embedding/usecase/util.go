package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"embeddings-srv/pkg/metrics"
)

const (
	sourceBackend = metrics.SourceBackend
	sourceCache   = metrics.SourceCache
)

// cacheKey scopes the text hash by model so switching models never serves stale vectors.
func cacheKey(model, text string) string {
	sum := sha256.Sum256([]byte(text))
	return model + ":" + hex.EncodeToString(sum[:])
}

func recordTexts(model, source string, n int) {
	metrics.TextsEmbedded.WithLabelValues(model, source).Add(float64(n))
}

type inferenceTimer struct {
	model string
	start time.Time
}

func startInference(model string) inferenceTimer {
	return inferenceTimer{model: model, start: time.Now()}
}

func (t inferenceTimer) observe(err error) {
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeError
	}
	metrics.InferenceDuration.WithLabelValues(t.model, outcome).Observe(time.Since(t.start).Seconds())
}
