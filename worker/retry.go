package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"embedsvc/config"
	"embedsvc/models"
	"embedsvc/storage"
)

const (
	defaultInterval  = 5 * time.Minute
	defaultBatchSize = 50
)

// RetryWorker periodically re-embeds articles whose embedding never reached
// success. The main backend marks rows pending; this sweeps up anything the
// API path missed or that failed transiently.
type RetryWorker struct {
	cron      *cron.Cron
	store     *storage.Store
	embedder  models.Embedder
	interval  time.Duration
	batchSize int
	log       zerolog.Logger
	entryID   cron.EntryID
}

// NewRetryWorker builds the worker, applying defaults for missing config.
func NewRetryWorker(cfg *config.WorkerConfig, store *storage.Store, embedder models.Embedder, log zerolog.Logger) (*RetryWorker, error) {
	interval := defaultInterval
	if cfg != nil && cfg.RetryInterval != "" {
		parsed, err := time.ParseDuration(cfg.RetryInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid retry interval %q: %w", cfg.RetryInterval, err)
		}
		interval = parsed
	}
	batchSize := defaultBatchSize
	if cfg != nil && cfg.BatchSize > 0 {
		batchSize = cfg.BatchSize
	}

	return &RetryWorker{
		cron:      cron.New(),
		store:     store,
		embedder:  embedder,
		interval:  interval,
		batchSize: batchSize,
		log:       log.With().Str("component", "retry-worker").Logger(),
	}, nil
}

// Start schedules the periodic sweep.
func (w *RetryWorker) Start() error {
	spec := fmt.Sprintf("@every %s", w.interval)
	entryID, err := w.cron.AddFunc(spec, func() {
		if err := w.RunOnce(context.Background()); err != nil {
			w.log.Error().Err(err).Msg("retry sweep failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule retry worker: %w", err)
	}

	w.entryID = entryID
	w.cron.Start()
	w.log.Info().Dur("interval", w.interval).Msg("retry worker started")
	return nil
}

// Stop removes the schedule and waits for a running sweep to finish.
func (w *RetryWorker) Stop() {
	if w.entryID > 0 {
		w.cron.Remove(w.entryID)
	}
	<-w.cron.Stop().Done()
	w.log.Info().Msg("retry worker stopped")
}

// RunOnce sweeps one batch of retryable articles. Each article is embedded
// and written in its own transaction so one bad article cannot poison the
// rest of the sweep; embed failures mark the row error for the next pass.
func (w *RetryWorker) RunOnce(ctx context.Context) error {
	records, err := w.store.ListRetryable(ctx, w.batchSize)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	w.log.Info().Int("count", len(records)).Msg("retrying embeddings")

	var failed int
	for _, record := range records {
		if err := w.retryOne(ctx, record.ID, record.Content); err != nil {
			failed++
			w.log.Warn().Err(err).Str("article_id", record.ID.String()).Msg("embedding retry failed")
		}
	}

	w.log.Info().Int("succeeded", len(records)-failed).Int("failed", failed).
		Msg("retry sweep completed")
	return nil
}

func (w *RetryWorker) retryOne(ctx context.Context, id uuid.UUID, content string) error {
	vectors, err := w.embedder.Embed(ctx, []string{content})
	if err != nil {
		return w.markError(ctx, id, err)
	}

	return w.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		return w.store.UpdateEmbedding(ctx, tx, id, vectors[0])
	})
}

func (w *RetryWorker) markError(ctx context.Context, id uuid.UUID, cause error) error {
	err := w.store.WithTx(ctx, func(tx *sqlx.Tx) error {
		return w.store.MarkEmbeddingError(ctx, tx, id)
	})
	if err != nil {
		return err
	}
	return cause
}
