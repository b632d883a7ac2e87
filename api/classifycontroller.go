package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"embedsvc/orchestrator"
	"embedsvc/types"
)

// RegisterClassificationRoutes registers the article-worthiness endpoints.
func RegisterClassificationRoutes(r *gin.Engine, svc *orchestrator.ClassificationService, log zerolog.Logger) {
	r.POST("/classify", handleClassify(svc, log))
	r.POST("/classify/batch", handleClassifyBatch(svc, log))
}

func handleClassify(svc *orchestrator.ClassificationService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ClassifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Missing 'text' field in request")
			return
		}

		resp, err := svc.ClassifyOne(c.Request.Context(), req.Text)
		if err != nil {
			respondServiceError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

func handleClassifyBatch(svc *orchestrator.ClassificationService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.BatchClassifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Missing 'texts' field in request")
			return
		}

		resp, err := svc.ClassifyBatch(c.Request.Context(), req.Texts)
		if err != nil {
			respondServiceError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
