package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"embedsvc/config"
)

const (
	healthTimeout   = 5 * time.Second
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = time.Hour
)

// Store wraps the pooled Postgres connection. All mutation runs inside
// WithTx scopes; the pool itself is safe for concurrent use.
type Store struct {
	db  *sqlx.DB
	log zerolog.Logger
}

// NewStore wraps an existing connection, used by tests with a mock driver.
func NewStore(db *sqlx.DB, log zerolog.Logger) *Store {
	return &Store{db: db, log: log}
}

// Open connects to Postgres and verifies the pgvector extension is
// installed. The schema itself is owned by the main backend; this service
// never creates it.
func Open(cfg *config.DatabaseConfig, log zerolog.Logger) (*Store, error) {
	db, err := sqlx.Connect("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	s := &Store{db: db, log: log}
	if err := s.checkVectorExtension(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	log.Info().Msg("database connection initialized")
	return s, nil
}

func (s *Store) checkVectorExtension(ctx context.Context) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pg_extension WHERE extname = 'vector'
		)
	`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check pgvector extension: %w", err)
	}
	if !exists {
		return errors.New("pgvector extension is not installed")
	}
	return nil
}

// Health probes the database with a bounded timeout.
func (s *Store) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var one int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		s.log.Error().Err(err).Msg("database health check failed")
		return err
	}
	return nil
}

// WithTx runs fn inside a transaction: commit on normal return, rollback on
// any error, release on every path.
func (s *Store) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Error().Err(rbErr).Msg("transaction rollback failed")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
