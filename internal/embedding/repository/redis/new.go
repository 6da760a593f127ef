package redis

import (
	"embeddings-srv/internal/embedding/repository"
	"embeddings-srv/pkg/log"
	pkgRedis "embeddings-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.Repository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
