package usecase

import (
	"context"

	"embeddings-srv/internal/embedding"
	"embeddings-srv/pkg/vector"
)

func (uc *implUseCase) Similarity(ctx context.Context, input embedding.SimilarityInput) (embedding.SimilarityOutput, error) {
	if len(input.Texts) == 0 {
		uc.l.Errorf(ctx, "embedding.usecase.Similarity: empty texts")
		return embedding.SimilarityOutput{}, embedding.ErrEmptyTexts
	}
	if input.Reference < 0 || input.Reference >= len(input.Texts) {
		uc.l.Errorf(ctx, "embedding.usecase.Similarity: reference %d out of range [0,%d)", input.Reference, len(input.Texts))
		return embedding.SimilarityOutput{}, embedding.ErrReferenceOutOfRange
	}

	out, err := uc.GenerateMany(ctx, embedding.GenerateManyInput{Texts: input.Texts})
	if err != nil {
		return embedding.SimilarityOutput{}, err
	}

	ref := out.Vectors[input.Reference]
	similarities := make([]float64, len(out.Vectors))
	for i, v := range out.Vectors {
		sim, err := vector.Cosine(ref, v)
		if err != nil {
			uc.l.Errorf(ctx, "embedding.usecase.Similarity: vector %d: %v", i, err)
			return embedding.SimilarityOutput{}, embedding.ErrInconsistentDimensions
		}
		similarities[i] = sim
	}

	return embedding.SimilarityOutput{
		Vectors:      out.Vectors,
		Similarities: similarities,
	}, nil
}
