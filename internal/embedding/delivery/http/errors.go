package http

import (
	"errors"
	"net/http"

	"embeddings-srv/internal/embedding"
	pkgErrors "embeddings-srv/pkg/errors"
)

var (
	errNoInputs = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "No inputs provided",
	)
	errReferenceOutOfRange = pkgErrors.NewHTTPError(
		http.StatusBadRequest, "Reference index out of range",
	)
	errEmbedFailed = pkgErrors.NewHTTPError(
		http.StatusBadGateway, "Failed to generate embeddings",
	)
	errUnauthorized = pkgErrors.NewHTTPError(
		http.StatusBadGateway, "Invalid embedding provider API key",
	)
	errMismatchedBatch = pkgErrors.NewHTTPError(
		http.StatusBadGateway, "Embedding backend returned a mismatched batch",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, embedding.ErrEmptyTexts),
		errors.Is(err, embedding.ErrEmptyText):
		return errNoInputs
	case errors.Is(err, embedding.ErrReferenceOutOfRange):
		return errReferenceOutOfRange
	case errors.Is(err, embedding.ErrUnauthorized):
		return errUnauthorized
	case errors.Is(err, embedding.ErrEmbedFailed):
		return errEmbedFailed
	case errors.Is(err, embedding.ErrMismatchVectorCount),
		errors.Is(err, embedding.ErrInconsistentDimensions),
		errors.Is(err, embedding.ErrNoVectorReturned):
		return errMismatchedBatch
	default:
		panic(err)
	}
}
