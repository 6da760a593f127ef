package usecase

import (
	"context"
	"errors"
	"fmt"

	"embeddings-srv/internal/embedding"
	"embeddings-srv/internal/embedding/repository"
	"embeddings-srv/pkg/embedder"
)

func (uc *implUseCase) Generate(ctx context.Context, input embedding.GenerateInput) (embedding.GenerateOutput, error) {
	if input.Text == "" {
		uc.l.Errorf(ctx, "embedding.usecase.Generate: empty text")
		return embedding.GenerateOutput{}, embedding.ErrEmptyText
	}

	out, err := uc.GenerateMany(ctx, embedding.GenerateManyInput{Texts: []string{input.Text}})
	if err != nil {
		return embedding.GenerateOutput{}, err
	}
	if len(out.Vectors) == 0 || len(out.Vectors[0]) == 0 {
		uc.l.Errorf(ctx, "embedding.usecase.Generate: no vector returned")
		return embedding.GenerateOutput{}, embedding.ErrNoVectorReturned
	}

	return embedding.GenerateOutput{Vector: out.Vectors[0]}, nil
}

func (uc *implUseCase) GenerateMany(ctx context.Context, input embedding.GenerateManyInput) (embedding.GenerateManyOutput, error) {
	if len(input.Texts) == 0 {
		uc.l.Errorf(ctx, "embedding.usecase.GenerateMany: empty texts")
		return embedding.GenerateManyOutput{}, embedding.ErrEmptyTexts
	}

	model := uc.embedder.Model()
	results := make([][]float32, len(input.Texts))
	keys := make([]string, len(input.Texts))
	for i, text := range input.Texts {
		keys[i] = cacheKey(model, text)
	}

	// 1. Check cache
	missIndices, missTexts := uc.fillFromCache(ctx, model, keys, input.Texts, results)
	if len(missIndices) == 0 {
		return embedding.GenerateManyOutput{Vectors: results}, nil
	}

	// 2. Call backend for misses
	vectors, err := uc.embed(ctx, model, missTexts)
	if err != nil {
		return embedding.GenerateManyOutput{}, err
	}
	if len(vectors) != len(missTexts) {
		uc.l.Errorf(ctx, "embedding.usecase.GenerateMany: mismatch vector count: want %d, got %d", len(missTexts), len(vectors))
		return embedding.GenerateManyOutput{}, embedding.ErrMismatchVectorCount
	}

	missKeys := make([]string, len(missIndices))
	for i, vector := range vectors {
		origIdx := missIndices[i]
		results[origIdx] = vector
		missKeys[i] = keys[origIdx]
	}

	// 3. Save cache for misses
	uc.saveToCache(ctx, missKeys, vectors)

	return embedding.GenerateManyOutput{Vectors: results}, nil
}

// fillFromCache writes cached vectors into results and returns the indices and texts still missing.
func (uc *implUseCase) fillFromCache(ctx context.Context, model string, keys, texts []string, results [][]float32) ([]int, []string) {
	var cached [][]float32
	if uc.repo != nil {
		var err error
		cached, err = uc.repo.GetMany(ctx, repository.GetManyOptions{Keys: keys})
		if err != nil {
			uc.l.Warnf(ctx, "embedding.usecase.GenerateMany: cache read failed, treating as miss: %v", err)
			cached = nil
		}
	}

	missIndices := make([]int, 0, len(texts))
	missTexts := make([]string, 0, len(texts))
	hits := 0
	for i, text := range texts {
		if i < len(cached) && len(cached[i]) > 0 {
			results[i] = cached[i]
			hits++
			continue
		}
		missIndices = append(missIndices, i)
		missTexts = append(missTexts, text)
	}

	if hits > 0 {
		uc.l.Debugf(ctx, "embedding.usecase.GenerateMany: %d of %d cache hits", hits, len(texts))
		recordTexts(model, sourceCache, hits)
	}
	return missIndices, missTexts
}

func (uc *implUseCase) embed(ctx context.Context, model string, texts []string) ([][]float32, error) {
	timer := startInference(model)
	vectors, err := uc.embedder.Embed(ctx, texts)
	timer.observe(err)
	if err != nil {
		uc.l.Errorf(ctx, "embedding.usecase.GenerateMany: embed failed: %v", err)
		if errors.Is(err, embedder.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %w", embedding.ErrUnauthorized, err)
		}
		return nil, fmt.Errorf("%w: %w", embedding.ErrEmbedFailed, err)
	}

	recordTexts(model, sourceBackend, len(texts))
	return vectors, nil
}

func (uc *implUseCase) saveToCache(ctx context.Context, keys []string, vectors [][]float32) {
	if uc.repo == nil {
		return
	}
	if err := uc.repo.SaveMany(ctx, repository.SaveManyOptions{
		Keys:    keys,
		Vectors: vectors,
		TTL:     uc.cfg.CacheTTL,
	}); err != nil {
		uc.l.Warnf(ctx, "embedding.usecase.GenerateMany: cache save failed: %v", err)
	}
}
