package http

import (
	"embeddings-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Embeddings - Embed a batch of texts
// @Summary Generate embeddings
// @Description Embed every input string with the configured model. The response holds one vector per input, in input order.
// @Tags Embeddings
// @Accept json
// @Produce json
// @Param body body embeddingsReq true "Texts to embed"
// @Success 200 {object} embeddingsResp
// @Failure 400 {object} response.ErrorResp
// @Failure 429 {object} response.ErrorResp
// @Failure 500 {object} response.ErrorResp
// @Failure 502 {object} response.ErrorResp
// @Router /embeddings [post]
func (h *handler) Embeddings(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, err := h.processEmbeddingsRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "embedding.delivery.http.Embeddings: processEmbeddingsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Call UseCase
	output, err := h.uc.GenerateMany(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "embedding.delivery.http.Embeddings: usecase GenerateMany failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Return response
	response.OK(c, h.newEmbeddingsResp(output))
}

// Similarity - Embed a batch and score it against one of its members
// @Summary Cosine similarity against a reference input
// @Description Embed every input and return the cosine similarity of each vector with the vector at index reference (default 0).
// @Tags Embeddings
// @Accept json
// @Produce json
// @Param body body similarityReq true "Texts and reference index"
// @Success 200 {object} similarityResp
// @Failure 400 {object} response.ErrorResp
// @Failure 429 {object} response.ErrorResp
// @Failure 500 {object} response.ErrorResp
// @Failure 502 {object} response.ErrorResp
// @Router /similarity [post]
func (h *handler) Similarity(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSimilarityRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "embedding.delivery.http.Similarity: processSimilarityRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.Similarity(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "embedding.delivery.http.Similarity: usecase Similarity failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSimilarityResp(output))
}
