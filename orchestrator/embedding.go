package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"embedsvc/models"
	"embedsvc/types"
)

// EmbeddingService validates embedding requests, delegates to the embedding
// collaborator, and shapes responses. It never persists anything.
type EmbeddingService struct {
	embedder models.Embedder
	log      zerolog.Logger
}

func NewEmbeddingService(embedder models.Embedder, log zerolog.Logger) *EmbeddingService {
	return &EmbeddingService{
		embedder: embedder,
		log:      log.With().Str("component", "embedding").Logger(),
	}
}

// EmbedOne generates an embedding for a single text.
func (s *EmbeddingService) EmbedOne(ctx context.Context, text string) (*types.EmbedResponse, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: Empty text provided", ErrValidation)
	}

	vectors, err := s.embedder.Embed(ctx, []string{trimmed})
	if err != nil {
		s.log.Error().Err(err).Msg("embedding generation failed")
		return nil, err
	}

	return &types.EmbedResponse{
		Text:      text,
		Embedding: vectors[0],
		Dimension: len(vectors[0]),
	}, nil
}

// EmbedBatch generates embeddings for multiple texts. Blank entries are
// filtered out before a single batched collaborator call; one call over the
// surviving set is cheaper than one call per text. Filtering everything away
// yields an empty result with dimension 0.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) (*types.BatchEmbedResponse, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: Empty or invalid texts list", ErrValidation)
	}

	cleanTexts := make([]string, 0, len(texts))
	for _, text := range texts {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			cleanTexts = append(cleanTexts, trimmed)
		}
	}

	if len(cleanTexts) == 0 {
		return &types.BatchEmbedResponse{
			Texts:      []string{},
			Embeddings: [][]float64{},
			Count:      0,
			Dimension:  0,
		}, nil
	}

	s.log.Info().Int("count", len(cleanTexts)).Msg("generating batch embeddings")

	embeddings, err := s.embedder.Embed(ctx, cleanTexts)
	if err != nil {
		s.log.Error().Err(err).Msg("batch embedding generation failed")
		return nil, err
	}

	dimension := 0
	if len(embeddings) > 0 {
		dimension = len(embeddings[0])
	}

	return &types.BatchEmbedResponse{
		Texts:      cleanTexts,
		Embeddings: embeddings,
		Count:      len(embeddings),
		Dimension:  dimension,
	}, nil
}
