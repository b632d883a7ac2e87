package models

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
	"github.com/rs/zerolog"

	"embedsvc/config"
	"embedsvc/types"
)

// Defaults for the Cohere-backed collaborators. The light embed model
// produces 384-dimensional vectors.
const (
	DefaultEmbedModel    = "embed-english-light-v3.0"
	DefaultClassifyModel = "embed-english-light-v3.0"
	DefaultDimension     = 384

	requestTimeout = 60 * time.Second
)

// NewModelContext builds the Cohere-backed embedder and sentiment classifier
// from configuration. Both share one client; the context is immutable once
// returned.
func NewModelContext(cfg *config.ModelsConfig, log zerolog.Logger) (*ModelContext, error) {
	if cfg == nil || cfg.CohereAPIKey == "" {
		return nil, errors.New("COHERE_API_KEY is not set")
	}

	embedModel := cfg.EmbedModel
	if embedModel == "" || !strings.HasPrefix(embedModel, "embed-") {
		embedModel = DefaultEmbedModel
	}
	classifyModel := cfg.ClassifyModel
	if classifyModel == "" {
		classifyModel = DefaultClassifyModel
	}
	dimension := cfg.EmbeddingDim
	if dimension <= 0 {
		dimension = DefaultDimension
	}

	// Force HTTP/1.1 to avoid HTTP/2 protocol errors against the Cohere API.
	httpClient := &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(cfg.CohereAPIKey),
		cohereclient.WithHTTPClient(httpClient),
	)

	log.Info().Str("embed_model", embedModel).Str("classify_model", classifyModel).
		Int("dimension", dimension).Msg("model collaborators initialized")

	return &ModelContext{
		Embedder:   &CohereEmbedder{client: client, model: embedModel, dimension: dimension},
		Classifier: &CohereClassifier{client: client, model: classifyModel},
	}, nil
}

// CohereEmbedder implements Embedder using the Cohere Embed API (v2).
type CohereEmbedder struct {
	client    *cohereclient.Client
	model     string
	dimension int
}

func (e *CohereEmbedder) Name() string { return e.model }

func (e *CohereEmbedder) Dimension() int { return e.dimension }

func (e *CohereEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := e.client.V2.Embed(
		ctx,
		&cohere.V2EmbedRequest{
			Texts:          texts,
			Model:          e.model,
			InputType:      cohere.EmbedInputTypeSearchDocument,
			EmbeddingTypes: []cohere.EmbeddingType{cohere.EmbeddingTypeFloat},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("cohere embed error: %w", err)
	}
	if resp == nil || resp.Embeddings == nil || resp.Embeddings.Float == nil {
		return nil, errors.New("cohere embed returned no float embeddings")
	}

	floats := resp.Embeddings.Float
	if len(floats) != len(texts) {
		return nil, errors.New("embedding count mismatch")
	}

	out := make([][]float64, len(floats))
	for i, vec := range floats {
		if len(vec) != e.dimension {
			return nil, fmt.Errorf("embedding dimension mismatch: got %d, want %d", len(vec), e.dimension)
		}
		out[i] = append([]float64(nil), vec...)
	}
	return out, nil
}

// CohereClassifier implements SentimentClassifier using the Cohere Classify
// API seeded with binary sentiment examples.
type CohereClassifier struct {
	client *cohereclient.Client
	model  string
}

// Seed examples for the binary sentiment classifier. The Classify API needs
// a handful of labelled examples per class when no fine-tuned model is used.
var sentimentExamples = []struct {
	text  string
	label string
}{
	{"The article offers a thorough, well researched look at the policy changes.", "POSITIVE"},
	{"An excellent and insightful piece of reporting.", "POSITIVE"},
	{"Clear writing and strong sourcing make this a great read.", "POSITIVE"},
	{"This was rambling nonsense with no substance at all.", "NEGATIVE"},
	{"Terrible clickbait, misleading from the first sentence.", "NEGATIVE"},
	{"Poorly written and full of factual errors.", "NEGATIVE"},
}

func (c *CohereClassifier) Name() string { return c.model }

func (c *CohereClassifier) Classify(ctx context.Context, text string) ([]types.LabelScore, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	examples := make([]*cohere.ClassifyExample, 0, len(sentimentExamples))
	for _, ex := range sentimentExamples {
		examples = append(examples, &cohere.ClassifyExample{
			Text:  strPtr(ex.text),
			Label: strPtr(ex.label),
		})
	}

	resp, err := c.client.Classify(ctx, &cohere.ClassifyRequest{
		Inputs:   []string{text},
		Examples: examples,
		Model:    strPtr(c.model),
	})
	if err != nil {
		return nil, fmt.Errorf("cohere classify error: %w", err)
	}
	if resp == nil || len(resp.Classifications) == 0 {
		return nil, errors.New("cohere classify returned no classifications")
	}

	item := resp.Classifications[0]
	scores := make([]types.LabelScore, 0, len(item.Labels))
	// Fixed label order keeps responses deterministic.
	for _, label := range []string{"POSITIVE", "NEGATIVE"} {
		if v, ok := item.Labels[label]; ok && v != nil && v.Confidence != nil {
			scores = append(scores, types.LabelScore{Label: label, Score: *v.Confidence})
		}
	}
	if len(scores) == 0 {
		return nil, errors.New("cohere classify returned no label confidences")
	}
	return scores, nil
}

func strPtr(s string) *string { return &s }
