package log

import (
	"context"
	"testing"
)

func TestRequestIDContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ctx := SetRequestIDToContext(context.Background(), "req-1")
		if got := GetRequestIDFromContext(ctx); got != "req-1" {
			t.Errorf("request id mismatch: got %s, want req-1", got)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if got := GetRequestIDFromContext(context.Background()); got != "" {
			t.Errorf("expected empty request id, got %s", got)
		}
	})
}

func TestInitFallsBackOnBadLevel(t *testing.T) {
	l := Init(ZapConfig{Level: "loud", Mode: ModeDevelopment, Encoding: EncodingConsole})
	if l == nil {
		t.Fatal("logger should not be nil")
	}
	l.Infof(SetRequestIDToContext(context.Background(), "abc"), "hello %s", "world")
}
