package ratelimit

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidConfig = errors.New("ratelimit: requests and window must be positive")

// NewMemory returns a per-key sliding log: a key is admitted when fewer than Requests of its
// requests were admitted in the last Window. State lives in the process, so each replica
// limits on its own.
func NewMemory(ctx context.Context, cfg Config) (ILimiter, error) {
	if cfg.Requests <= 0 || cfg.Window <= 0 {
		return nil, ErrInvalidConfig
	}
	l := &memoryLimiter{
		cfg:      cfg,
		visitors: make(map[string]*visitor),
		idleTTL:  2 * cfg.Window,
		now:      time.Now,
	}
	go l.janitor(ctx)
	return l, nil
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{hits: make([]time.Time, 0, l.cfg.Requests)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	v.hits = dropExpired(v.hits, now.Add(-l.cfg.Window))

	if len(v.hits) < l.cfg.Requests {
		v.hits = append(v.hits, now)
		return true, 0, nil
	}
	return false, v.hits[0].Add(l.cfg.Window).Sub(now), nil
}

// dropExpired removes hits at or before cutoff. hits is sorted.
func dropExpired(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return hits
	}
	return append(hits[:0], hits[i:]...)
}

func (l *memoryLimiter) janitor(ctx context.Context) {
	ticker := time.NewTicker(l.cfg.Window)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.evictIdle()
		}
	}
}

func (l *memoryLimiter) evictIdle() {
	cutoff := l.now().Add(-l.idleTTL)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, key)
		}
	}
}
