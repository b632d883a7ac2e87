package api

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"embedsvc/orchestrator"
)

// Services bundles the orchestrators the HTTP layer exposes.
type Services struct {
	Embedding      *orchestrator.EmbeddingService
	Classification *orchestrator.ClassificationService
	Persistence    *orchestrator.PersistenceService
	Health         *orchestrator.HealthService
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(svcs Services, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; request logging stays with zerolog
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterHealthRoutes(r, svcs.Health)
	RegisterEmbeddingRoutes(r, svcs.Embedding, log)
	RegisterSimilarityRoutes(r)
	RegisterClassificationRoutes(r, svcs.Classification, log)
	RegisterArticleRoutes(r, svcs.Persistence, log)
	return r
}
