package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"embedsvc/types"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(sqlx.NewDb(db, "sqlmock"), zerolog.Nop()), mock
}

func TestEncodeVector(t *testing.T) {
	assert.Equal(t, "[0.5,-1.25,3]", encodeVector([]float64{0.5, -1.25, 3}))
	assert.Equal(t, "[]", encodeVector(nil))
}

func TestArticleExists(t *testing.T) {
	store, mock := newMockStore(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM articles WHERE id = \$1\)`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectCommit()

	err := store.WithTx(context.Background(), func(tx *sqlx.Tx) error {
		exists, err := store.ArticleExists(context.Background(), tx, id)
		assert.NoError(t, err)
		assert.True(t, exists)
		return nil
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmbedding(t *testing.T) {
	store, mock := newMockStore(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE articles`).
		WithArgs("[0.1,0.2]", types.EmbeddingStatusSuccess, id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.WithTx(context.Background(), func(tx *sqlx.Tx) error {
		return store.UpdateEmbedding(context.Background(), tx, id, []float64{0.1, 0.2})
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := store.WithTx(context.Background(), func(tx *sqlx.Tx) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxCommitFailure(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("commit refused"))

	err := store.WithTx(context.Background(), func(tx *sqlx.Tx) error { return nil })
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "commit")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRetryable(t *testing.T) {
	store, mock := newMockStore(t)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "content", "embedding_status", "updated_at"}).
		AddRow(id.String(), "some article content", types.EmbeddingStatusError, time.Now())
	mock.ExpectQuery(`SELECT id, content, embedding_status, updated_at`).
		WithArgs(types.EmbeddingStatusPending, types.EmbeddingStatusError, 50).
		WillReturnRows(rows)

	records, err := store.ListRetryable(context.Background(), 50)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)
	assert.Equal(t, "some article content", records[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealth(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT 1`).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	assert.NoError(t, store.Health(context.Background()))

	mock.ExpectQuery(`SELECT 1`).
		WillReturnError(errors.New("connection refused"))
	assert.Error(t, store.Health(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
