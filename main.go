package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"embedsvc/api"
	"embedsvc/cache"
	"embedsvc/config"
	"embedsvc/logging"
	"embedsvc/models"
	"embedsvc/orchestrator"
	"embedsvc/storage"
	"embedsvc/worker"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.New(&cfg.Logging)

	if cfg.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	mc, err := models.NewModelContext(&cfg.Models, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize models")
	}

	store, err := storage.Open(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer store.Close()

	sentimentCache := cache.New(&cfg.Cache, log)
	defer sentimentCache.Close()

	svcs := api.Services{
		Embedding:      orchestrator.NewEmbeddingService(mc.Embedder, log),
		Classification: orchestrator.NewClassificationService(mc.Classifier, sentimentCache, log),
		Persistence:    orchestrator.NewPersistenceService(mc.Embedder, store, log),
		Health:         orchestrator.NewHealthService(mc, store),
	}

	retry, err := worker.NewRetryWorker(&cfg.Worker, store, mc.Embedder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build retry worker")
	}
	if err := retry.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start retry worker")
	}
	defer retry.Stop()

	r := api.NewRouter(svcs, log)

	addr := ":" + cfg.Server.Port
	log.Info().
		Str("addr", addr).
		Str("embedding_model", mc.Embedder.Name()).
		Str("classifier_model", mc.Classifier.Name()).
		Msg("starting embedding service")

	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
