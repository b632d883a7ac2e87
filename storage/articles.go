package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"embedsvc/types"
)

// ArticleExists reports whether an article row exists, within the given
// transaction.
func (s *Store) ArticleExists(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (bool, error) {
	var exists bool
	err := tx.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1)", id)
	if err != nil {
		return false, fmt.Errorf("failed to look up article %s: %w", id, err)
	}
	return exists, nil
}

// UpdateEmbedding writes the embedding vector and marks the row successful,
// within the given transaction. Only these two columns (plus updated_at) are
// ever touched; rows are never created here.
func (s *Store) UpdateEmbedding(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, embedding []float64) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE articles
		SET embedding = $1, embedding_status = $2, updated_at = NOW()
		WHERE id = $3
	`, encodeVector(embedding), types.EmbeddingStatusSuccess, id)
	if err != nil {
		return fmt.Errorf("failed to update embedding for article %s: %w", id, err)
	}
	return nil
}

// MarkEmbeddingError flags a row whose embedding could not be computed,
// within the given transaction.
func (s *Store) MarkEmbeddingError(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE articles
		SET embedding_status = $1, updated_at = NOW()
		WHERE id = $2
	`, types.EmbeddingStatusError, id)
	if err != nil {
		return fmt.Errorf("failed to mark embedding error for article %s: %w", id, err)
	}
	return nil
}

// ListRetryable returns articles whose embedding never reached success and
// that still have content to embed, oldest first.
func (s *Store) ListRetryable(ctx context.Context, limit int) ([]types.ArticleRecord, error) {
	var records []types.ArticleRecord
	err := s.db.SelectContext(ctx, &records, `
		SELECT id, content, embedding_status, updated_at
		FROM articles
		WHERE embedding_status IN ($1, $2)
		  AND content IS NOT NULL AND content <> ''
		ORDER BY updated_at ASC
		LIMIT $3
	`, types.EmbeddingStatusPending, types.EmbeddingStatusError, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list retryable articles: %w", err)
	}
	return records, nil
}

// encodeVector renders a vector in pgvector's input format: [f1,f2,...].
func encodeVector(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
