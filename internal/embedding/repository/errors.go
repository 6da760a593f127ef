package repository

import "errors"

var (
	ErrNotFound          = errors.New("embedding.repository: not found")
	ErrKeyVectorMismatch = errors.New("embedding.repository: keys and vectors differ in length")
)
