package types

import (
	"time"

	"github.com/google/uuid"
)

// ArticleRecord is the slice of an articles row this service touches. Rows
// are owned by the main backend; only embedding and embedding_status are
// ever written here.
type ArticleRecord struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Content         string    `db:"content" json:"content"`
	EmbeddingStatus string    `db:"embedding_status" json:"embedding_status"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
