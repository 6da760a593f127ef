package embedding

import "errors"

var (
	ErrEmptyText              = errors.New("embedding: empty text")
	ErrNoVectorReturned       = errors.New("embedding: no vector returned")
	ErrEmptyTexts             = errors.New("embedding: empty texts")
	ErrMismatchVectorCount    = errors.New("embedding: mismatch vector count")
	ErrInconsistentDimensions = errors.New("embedding: vectors have different dimensions")
	ErrReferenceOutOfRange    = errors.New("embedding: reference index out of range")
	ErrEmbedFailed            = errors.New("embedding: backend embed failed")
	ErrUnauthorized           = errors.New("embedding: backend rejected API key")
)
