package vector

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/blas/gonum"
)

var ErrDimensionMismatch = errors.New("vector: vectors must have the same length")

var blas = gonum.Implementation{}

// Dot returns the dot product of a and b.
func Dot(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	if len(a) == 0 {
		return 0, nil
	}
	return float64(blas.Sdot(len(a), a, 1, b, 1)), nil
}

// Norm returns the euclidean length of v.
func Norm(v []float32) float64 {
	if len(v) == 0 {
		return 0
	}
	return float64(blas.Snrm2(len(v), v, 1))
}

// Cosine returns the cosine similarity of a and b. A zero vector has similarity 0 with anything.
func Cosine(a, b []float32) (float64, error) {
	dot, err := Dot(a, b)
	if err != nil {
		return 0, err
	}
	denom := Norm(a) * Norm(b)
	if denom == 0 {
		return 0, nil
	}
	// Clamp float32 rounding so identical vectors report exactly 1.
	return math.Max(-1, math.Min(1, dot/denom)), nil
}
