package http

import "embeddings-srv/internal/embedding"

// =====================================================
// Request DTOs
// =====================================================

type embeddingsReq struct {
	Inputs []string `json:"inputs"`
}

func (r embeddingsReq) toInput() embedding.GenerateManyInput {
	return embedding.GenerateManyInput{Texts: r.Inputs}
}

type similarityReq struct {
	Inputs []string `json:"inputs"`
	// Reference defaults to the first input.
	Reference *int `json:"reference,omitempty"`
}

func (r similarityReq) toInput() embedding.SimilarityInput {
	input := embedding.SimilarityInput{Texts: r.Inputs}
	if r.Reference != nil {
		input.Reference = *r.Reference
	}
	return input
}

// =====================================================
// Response DTOs
// =====================================================

type embeddingsResp struct {
	Embeddings [][]float32 `json:"embeddings"`
}

type similarityResp struct {
	Embeddings   [][]float32 `json:"embeddings"`
	Similarities []float64   `json:"similarities"`
}

func (h *handler) newEmbeddingsResp(output embedding.GenerateManyOutput) embeddingsResp {
	return embeddingsResp{Embeddings: output.Vectors}
}

func (h *handler) newSimilarityResp(output embedding.SimilarityOutput) similarityResp {
	return similarityResp{
		Embeddings:   output.Vectors,
		Similarities: output.Similarities,
	}
}
