package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"embedsvc/cache"
	"embedsvc/models"
	"embedsvc/textproc"
	"embedsvc/types"
)

const displayLength = 100

// ClassificationService validates classification requests and combines the
// text normalizer, the sentiment collaborator, and the article scorer.
type ClassificationService struct {
	classifier models.SentimentClassifier
	cache      *cache.Cache
	log        zerolog.Logger
}

func NewClassificationService(classifier models.SentimentClassifier, c *cache.Cache, log zerolog.Logger) *ClassificationService {
	return &ClassificationService{
		classifier: classifier,
		cache:      c,
		log:        log.With().Str("component", "classification").Logger(),
	}
}

// ClassifyOne scores a single text for article-worthiness. The classifier
// sees the normalized text; length and word statistics come from the
// original, untruncated text.
func (s *ClassificationService) ClassifyOne(ctx context.Context, text string) (*types.ClassifyResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: Empty text provided", ErrValidation)
	}

	cleaned := textproc.Normalize(text)
	scores, err := s.sentimentFor(ctx, cleaned)
	if err != nil {
		s.log.Error().Err(err).Msg("classification failed")
		return nil, err
	}

	confidence := textproc.Score(text, scores)

	return &types.ClassifyResponse{
		Text:       truncateDisplay(text),
		IsArticle:  textproc.IsArticle(confidence),
		Confidence: confidence,
		Details: types.ClassificationDetails{
			SentimentScores:   scores,
			TextLength:        utf8.RuneCountInString(text),
			CleanedTextLength: utf8.RuneCountInString(cleaned),
			WordCount:         len(strings.Fields(cleaned)),
		},
	}, nil
}

// ClassifyBatch scores multiple texts independently, skipping blank entries
// while preserving each survivor's original position. Items are classified
// one by one: each classifier result feeds a score over that item's own
// original text.
func (s *ClassificationService) ClassifyBatch(ctx context.Context, texts []string) (*types.BatchClassifyResponse, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: Empty or invalid texts list", ErrValidation)
	}

	indices := make([]int, 0, len(texts))
	for i, text := range texts {
		if strings.TrimSpace(text) != "" {
			indices = append(indices, i)
		}
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: No valid texts provided", ErrValidation)
	}

	s.log.Info().Int("count", len(indices)).Msg("batch classifying texts")

	results := make([]types.BatchClassifyItem, 0, len(indices))
	for _, idx := range indices {
		original := texts[idx]
		cleaned := textproc.Normalize(original)

		scores, err := s.sentimentFor(ctx, cleaned)
		if err != nil {
			s.log.Error().Err(err).Int("index", idx).Msg("batch classification failed")
			return nil, err
		}

		confidence := textproc.Score(original, scores)
		results = append(results, types.BatchClassifyItem{
			Text:       truncateDisplay(original),
			IsArticle:  textproc.IsArticle(confidence),
			Confidence: confidence,
			Index:      idx,
		})
	}

	return &types.BatchClassifyResponse{
		Results:   results,
		Count:     len(results),
		Processed: len(indices),
	}, nil
}

func (s *ClassificationService) sentimentFor(ctx context.Context, cleaned string) ([]types.LabelScore, error) {
	if scores, ok := s.cache.GetSentiment(ctx, cleaned); ok {
		return scores, nil
	}

	scores, err := s.classifier.Classify(ctx, cleaned)
	if err != nil {
		return nil, err
	}

	s.cache.SetSentiment(ctx, cleaned, scores)
	return scores, nil
}

func truncateDisplay(text string) string {
	r := []rune(text)
	if len(r) <= displayLength {
		return text
	}
	return string(r[:displayLength]) + "..."
}
