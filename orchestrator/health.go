package orchestrator

import (
	"context"

	"embedsvc/models"
	"embedsvc/types"
)

// HealthService aggregates liveness of the model collaborators and storage.
type HealthService struct {
	models *models.ModelContext
	store  ArticleStore
}

func NewHealthService(m *models.ModelContext, store ArticleStore) *HealthService {
	return &HealthService{models: m, store: store}
}

// Check reports overall health. The service is healthy iff the database
// probe succeeds; model load state is reported independently. The probe
// carries its own timeout and never blocks indefinitely.
func (s *HealthService) Check(ctx context.Context) *types.HealthResponse {
	dbHealthy := s.store != nil && s.store.Health(ctx) == nil
	embedderLoaded, classifierLoaded := s.models.Loaded()

	status := "unhealthy"
	if dbHealthy {
		status = "healthy"
	}

	resp := &types.HealthResponse{
		Status:               status,
		EmbeddingModelLoaded: embedderLoaded,
		ClassifierLoaded:     classifierLoaded,
		DatabaseHealthy:      dbHealthy,
	}
	if embedderLoaded {
		resp.EmbeddingModel = s.models.Embedder.Name()
	}
	if classifierLoaded {
		resp.ClassifierModel = s.models.Classifier.Name()
	}
	return resp
}
