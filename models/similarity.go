package models

import (
	"errors"
	"math"
)

// ErrDimensionMismatch is returned when two vectors of different lengths
// are compared. Mismatched shapes are rejected, never reshaped.
var ErrDimensionMismatch = errors.New("embedding dimensions don't match")

// CosineSimilarity computes the cosine similarity of two equal-length
// vectors. If either vector has zero norm the similarity is 0.0.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)
	if normA == 0 || normB == 0 {
		return 0.0, nil
	}
	return dot / (normA * normB), nil
}
