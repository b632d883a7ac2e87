package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"embedsvc/models"
	"embedsvc/types"
)

// ArticleStore is the storage surface the persistence orchestrator needs.
// *storage.Store satisfies it.
type ArticleStore interface {
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	ArticleExists(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (bool, error)
	UpdateEmbedding(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, embedding []float64) error
	MarkEmbeddingError(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error
	Health(ctx context.Context) error
}

// PersistenceService generates embeddings and upserts them into existing
// article rows, one transaction per call.
type PersistenceService struct {
	embedder models.Embedder
	store    ArticleStore
	log      zerolog.Logger
}

func NewPersistenceService(embedder models.Embedder, store ArticleStore, log zerolog.Logger) *PersistenceService {
	return &PersistenceService{
		embedder: embedder,
		store:    store,
		log:      log.With().Str("component", "persistence").Logger(),
	}
}

// EmbedAndStore embeds one text and writes it to the article's row. The
// lookup and update share a transaction; any storage failure rolls the whole
// thing back.
func (s *PersistenceService) EmbedAndStore(ctx context.Context, articleID, text string) (*types.StoreEmbeddingResponse, error) {
	id, err := uuid.Parse(articleID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, articleID)
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: Empty text provided", ErrValidation)
	}

	vectors, err := s.embedder.Embed(ctx, []string{trimmed})
	if err != nil {
		s.log.Error().Err(err).Str("article_id", articleID).Msg("embedding generation failed")
		return nil, err
	}
	embedding := vectors[0]

	err = s.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		exists, err := s.store.ArticleExists(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStorage, err)
		}
		if !exists {
			return ErrNotFound
		}
		if err := s.store.UpdateEmbedding(ctx, tx, id, embedding); err != nil {
			return fmt.Errorf("%w: %v", ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		if isTaggedError(err) {
			return nil, err
		}
		// Commit failures arrive untagged from the transaction scope.
		s.log.Error().Err(err).Str("article_id", articleID).Msg("embedding store failed")
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	s.log.Info().Str("article_id", articleID).Msg("embedding stored")

	return &types.StoreEmbeddingResponse{
		ArticleID:          articleID,
		EmbeddingDimension: len(embedding),
		EmbeddingStatus:    types.EmbeddingStatusSuccess,
		Message:            "Embedding generated and stored successfully",
	}, nil
}

// EmbedAndStoreBatch processes a batch of (id, text) pairs inside one
// transaction. Item-level failures (bad id, blank text, missing row, embed
// failure) are recorded and skipped; the single commit at the end makes the
// surviving updates all-or-nothing.
func (s *PersistenceService) EmbedAndStoreBatch(ctx context.Context, items []types.BatchArticleItem) (*types.BatchStoreResponse, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: Empty or invalid articles list", ErrValidation)
	}

	s.log.Info().Int("count", len(items)).Msg("processing batch embedding")

	results := make([]types.BatchStoreItemResult, 0, len(items))
	successful := 0

	err := s.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, item := range items {
			res := s.storeBatchItem(ctx, tx, item)
			if res.Status == types.EmbeddingStatusSuccess {
				successful++
			}
			results = append(results, res)
		}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Msg("batch embedding commit failed")
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	s.log.Info().Int("successful", successful).Int("total", len(items)).
		Msg("batch embedding completed")

	return &types.BatchStoreResponse{
		TotalArticles:     len(items),
		SuccessfulUpdates: successful,
		Results:           results,
	}, nil
}

func (s *PersistenceService) storeBatchItem(ctx context.Context, tx *sqlx.Tx, item types.BatchArticleItem) types.BatchStoreItemResult {
	text := strings.TrimSpace(item.Text)
	if item.ID == "" || text == "" {
		return itemError(item.ID, "Missing article ID or text")
	}

	id, err := uuid.Parse(item.ID)
	if err != nil {
		return itemError(item.ID, "Invalid article ID format")
	}

	exists, err := s.store.ArticleExists(ctx, tx, id)
	if err != nil {
		s.log.Error().Err(err).Str("article_id", item.ID).Msg("batch item lookup failed")
		return itemError(item.ID, "Database error")
	}
	if !exists {
		return itemError(item.ID, "Article not found")
	}

	vectors, err := s.embedder.Embed(ctx, []string{text})
	if err != nil {
		s.log.Error().Err(err).Str("article_id", item.ID).Msg("batch item embedding failed")
		if markErr := s.store.MarkEmbeddingError(ctx, tx, id); markErr != nil {
			s.log.Error().Err(markErr).Str("article_id", item.ID).Msg("failed to mark embedding error")
		}
		return itemError(item.ID, "Failed to generate embedding")
	}
	embedding := vectors[0]

	if err := s.store.UpdateEmbedding(ctx, tx, id, embedding); err != nil {
		s.log.Error().Err(err).Str("article_id", item.ID).Msg("batch item update failed")
		return itemError(item.ID, "Database error")
	}

	return types.BatchStoreItemResult{
		ArticleID:          item.ID,
		Status:             types.EmbeddingStatusSuccess,
		EmbeddingDimension: len(embedding),
	}
}

func itemError(id, message string) types.BatchStoreItemResult {
	return types.BatchStoreItemResult{
		ArticleID: id,
		Status:    types.EmbeddingStatusError,
		Message:   message,
	}
}
