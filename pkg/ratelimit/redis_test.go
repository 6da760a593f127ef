package ratelimit

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	pkgRedis "embeddings-srv/pkg/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	member string
	at     time.Time
}

// fakeRedis keeps each sorted set as a slice ordered by insertion time.
type fakeRedis struct {
	pkgRedis.IRedis
	sets      map[string][]entry
	err       error
	removeErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{sets: map[string][]entry{}}
}

func (f *fakeRedis) AddToWindow(_ context.Context, key, member string, now time.Time, window time.Duration) (int64, time.Time, error) {
	if f.err != nil {
		return 0, time.Time{}, f.err
	}
	cutoff := now.Add(-window)
	kept := f.sets[key][:0]
	for _, e := range f.sets[key] {
		if e.at.After(cutoff) {
			kept = append(kept, e)
		}
	}
	kept = append(kept, entry{member: member, at: now})
	f.sets[key] = kept
	return int64(len(kept)), kept[0].at, nil
}

func (f *fakeRedis) RemoveFromWindow(_ context.Context, key, member string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	kept := f.sets[key][:0]
	for _, e := range f.sets[key] {
		if e.member != member {
			kept = append(kept, e)
		}
	}
	f.sets[key] = kept
	return nil
}

func newTestRedis(t *testing.T, r pkgRedis.IRedis, cfg Config) (*redisLimiter, *time.Time) {
	t.Helper()
	l, err := NewRedis(r, cfg)
	require.NoError(t, err)

	rl := l.(*redisLimiter)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	n := 0
	rl.member = func() string { n++; return strconv.Itoa(n) }
	return rl, &now
}

func TestRedisLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("sliding window", func(t *testing.T) {
		r := newFakeRedis()
		l, now := newTestRedis(t, r, Config{Requests: 2, Window: time.Minute})

		ok, _, _ := l.Allow(ctx, "1.2.3.4")
		assert.True(t, ok)
		*now = now.Add(20 * time.Second)
		ok, _, _ = l.Allow(ctx, "1.2.3.4")
		assert.True(t, ok)

		ok, retryAfter, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 40*time.Second, retryAfter)
		assert.Len(t, r.sets["ratelimit:1.2.3.4"], 2, "rejected request must not stay in the window")

		*now = now.Add(40 * time.Second)
		ok, _, _ = l.Allow(ctx, "1.2.3.4")
		assert.True(t, ok)
	})

	t.Run("failed removal still rejects", func(t *testing.T) {
		r := newFakeRedis()
		r.removeErr = errors.New("connection reset")
		l, _ := newTestRedis(t, r, Config{Requests: 1, Window: time.Minute})

		l.Allow(ctx, "1.2.3.4")
		ok, _, err := l.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("redis error", func(t *testing.T) {
		r := newFakeRedis()
		r.err = errors.New("connection refused")
		l, _ := newTestRedis(t, r, Config{Requests: 2, Window: time.Minute})

		_, _, err := l.Allow(ctx, "1.2.3.4")
		assert.ErrorContains(t, err, "connection refused")
	})
}
