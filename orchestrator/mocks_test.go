package orchestrator

import (
	"context"

	"embedsvc/types"
)

// fakeEmbedder returns a constant-valued vector per input text.
type fakeEmbedder struct {
	dim   int
	err   error
	calls int
	texts [][]string
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	f.calls++
	f.texts = append(f.texts, texts)
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float64, len(texts))
	for i := range texts {
		vec := make([]float64, f.dim)
		for j := range vec {
			vec[j] = 0.25
		}
		out[i] = vec
	}
	return out, nil
}

func (f *fakeEmbedder) Dimension() int { return f.dim }
func (f *fakeEmbedder) Name() string   { return "fake-embed" }

type fakeClassifier struct {
	scores []types.LabelScore
	err    error
	calls  int
	texts  []string
}

func (f *fakeClassifier) Classify(_ context.Context, text string) ([]types.LabelScore, error) {
	f.calls++
	f.texts = append(f.texts, text)
	if f.err != nil {
		return nil, f.err
	}
	return f.scores, nil
}

func (f *fakeClassifier) Name() string { return "fake-classify" }
