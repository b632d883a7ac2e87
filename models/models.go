package models

import (
	"context"

	"embedsvc/types"
)

// Embedder abstracts a text->embedding generator.
// Implementations return one vector per input text, every vector exactly
// Dimension() long.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
	Dimension() int
	Name() string
}

// SentimentClassifier abstracts a text->label/score distribution model.
type SentimentClassifier interface {
	Classify(ctx context.Context, text string) ([]types.LabelScore, error)
	Name() string
}

// ModelContext bundles the model collaborators. It is constructed once at
// startup, is immutable afterwards, and is safe for concurrent use.
type ModelContext struct {
	Embedder   Embedder
	Classifier SentimentClassifier
}

// Loaded reports whether both collaborators are available.
func (m *ModelContext) Loaded() (embedder bool, classifier bool) {
	if m == nil {
		return false, false
	}
	return m.Embedder != nil, m.Classifier != nil
}
