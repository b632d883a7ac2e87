package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilaritySelf(t *testing.T) {
	v := []float64{0.3, -1.2, 4.5, 0.01}
	sim, err := CosineSimilarity(v, v)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	sim, err := CosineSimilarity([]float64{1, 0}, []float64{0, 1})
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, sim, 1e-9)
}

func TestCosineSimilarityOpposite(t *testing.T) {
	sim, err := CosineSimilarity([]float64{1, 2}, []float64{-1, -2})
	assert.NoError(t, err)
	assert.InDelta(t, -1.0, sim, 1e-9)
}

func TestCosineSimilarityZeroNorm(t *testing.T) {
	sim, err := CosineSimilarity([]float64{0, 0, 0}, []float64{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, 0.0, sim)
}

func TestCosineSimilarityShapeMismatch(t *testing.T) {
	_, err := CosineSimilarity([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
