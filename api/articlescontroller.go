package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"embedsvc/orchestrator"
	"embedsvc/types"
)

// RegisterArticleRoutes registers the embedding persistence endpoints.
func RegisterArticleRoutes(r *gin.Engine, svc *orchestrator.PersistenceService, log zerolog.Logger) {
	r.POST("/articles/:id/embedding", handleStoreEmbedding(svc, log))
	r.POST("/articles/batch/embedding", handleStoreEmbeddingBatch(svc, log))
}

func handleStoreEmbedding(svc *orchestrator.PersistenceService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.StoreEmbeddingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Missing 'text' field in request")
			return
		}

		resp, err := svc.EmbedAndStore(c.Request.Context(), c.Param("id"), req.Text)
		if err != nil {
			respondServiceError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func handleStoreEmbeddingBatch(svc *orchestrator.PersistenceService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.BatchStoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Missing 'articles' field in request")
			return
		}

		resp, err := svc.EmbedAndStoreBatch(c.Request.Context(), req.Articles)
		if err != nil {
			respondServiceError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
