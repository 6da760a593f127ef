package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processEmbeddingsRequest(c *gin.Context) (embeddingsReq, error) {
	var req embeddingsReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	if len(req.Inputs) == 0 {
		return req, errNoInputs
	}
	return req, nil
}

func (h *handler) processSimilarityRequest(c *gin.Context) (similarityReq, error) {
	var req similarityReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	if len(req.Inputs) == 0 {
		return req, errNoInputs
	}
	return req, nil
}
