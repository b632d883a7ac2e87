package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"embedsvc/orchestrator"
	"embedsvc/types"
)

// RegisterEmbeddingRoutes registers the embedding endpoints.
func RegisterEmbeddingRoutes(r *gin.Engine, svc *orchestrator.EmbeddingService, log zerolog.Logger) {
	r.POST("/embed", handleEmbed(svc, log))
	r.POST("/embed/batch", handleEmbedBatch(svc, log))
}

func handleEmbed(svc *orchestrator.EmbeddingService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.EmbedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Missing 'text' field in request")
			return
		}

		resp, err := svc.EmbedOne(c.Request.Context(), req.Text)
		if err != nil {
			respondServiceError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func handleEmbedBatch(svc *orchestrator.EmbeddingService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.BatchEmbedRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Missing 'texts' field in request")
			return
		}

		resp, err := svc.EmbedBatch(c.Request.Context(), req.Texts)
		if err != nil {
			respondServiceError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
