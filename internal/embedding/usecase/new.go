package usecase

import (
	"time"

	"embeddings-srv/internal/embedding"
	"embeddings-srv/internal/embedding/repository"
	"embeddings-srv/pkg/embedder"
	"embeddings-srv/pkg/log"
)

// Config controls the optional vector cache.
type Config struct {
	CacheTTL time.Duration
}

type implUseCase struct {
	repo     repository.Repository
	embedder embedder.IEmbedder
	l        log.Logger
	cfg      Config
}

// New builds the embedding use case. repo may be nil, in which case every text goes to the backend.
func New(repo repository.Repository, embedder embedder.IEmbedder, l log.Logger, cfg Config) embedding.UseCase {
	return &implUseCase{
		repo:     repo,
		embedder: embedder,
		l:        l,
		cfg:      cfg,
	}
}
