package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"embeddings-srv/internal/embedding/repository"
	pkgRedis "embeddings-srv/pkg/redis"
)

const (
	Prefix     = "embedding:"
	DefaultTTL = 7 * 24 * time.Hour
)

func (r *implRepository) Get(ctx context.Context, opt repository.GetOptions) ([]float32, error) {
	data, err := r.redis.Get(ctx, key(opt.Key))
	if errors.Is(err, pkgRedis.ErrNil) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "embedding.repository.redis.Get: %v", err)
		return nil, err
	}

	var vector []float32
	if err := json.Unmarshal([]byte(data), &vector); err != nil {
		r.l.Errorf(ctx, "embedding.repository.redis.Get: unmarshal error: %v", err)
		return nil, err
	}
	return vector, nil
}

func (r *implRepository) GetMany(ctx context.Context, opt repository.GetManyOptions) ([][]float32, error) {
	if len(opt.Keys) == 0 {
		return nil, nil
	}

	keys := make([]string, len(opt.Keys))
	for i, k := range opt.Keys {
		keys[i] = key(k)
	}

	values, err := r.redis.MGet(ctx, keys...)
	if err != nil {
		r.l.Errorf(ctx, "embedding.repository.redis.GetMany: %v", err)
		return nil, err
	}

	vectors := make([][]float32, len(opt.Keys))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var vector []float32
		if err := json.Unmarshal([]byte(s), &vector); err != nil {
			// A corrupt entry is a miss; it is overwritten on the next save.
			r.l.Warnf(ctx, "embedding.repository.redis.GetMany: unmarshal error for %s: %v", keys[i], err)
			continue
		}
		vectors[i] = vector
	}
	return vectors, nil
}

func (r *implRepository) Save(ctx context.Context, opt repository.SaveOptions) error {
	data, err := json.Marshal(opt.Vector)
	if err != nil {
		r.l.Errorf(ctx, "embedding.repository.redis.Save: %v", err)
		return err
	}

	if err := r.redis.Set(ctx, key(opt.Key), data, ttlOrDefault(opt.TTL)); err != nil {
		r.l.Errorf(ctx, "embedding.repository.redis.Save: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) SaveMany(ctx context.Context, opt repository.SaveManyOptions) error {
	if len(opt.Keys) != len(opt.Vectors) {
		return repository.ErrKeyVectorMismatch
	}

	for i := range opt.Keys {
		if err := r.Save(ctx, repository.SaveOptions{
			Key:    opt.Keys[i],
			Vector: opt.Vectors[i],
			TTL:    opt.TTL,
		}); err != nil {
			return fmt.Errorf("save %d of %d: %w", i+1, len(opt.Keys), err)
		}
	}
	return nil
}

func key(k string) string {
	return Prefix + k
}

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}
