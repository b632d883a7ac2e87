package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"embedsvc/models"
	"embedsvc/types"
)

// RegisterSimilarityRoutes registers the cosine similarity endpoint. Pure
// vector math, no collaborators involved.
func RegisterSimilarityRoutes(r *gin.Engine) {
	r.POST("/similarity", handleSimilarity)
}

func handleSimilarity(c *gin.Context) {
	var req types.SimilarityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing embedding1 or embedding2 fields")
		return
	}
	if req.Embedding1 == nil || req.Embedding2 == nil {
		respondError(c, http.StatusBadRequest, "Missing embedding1 or embedding2 fields")
		return
	}

	similarity, err := models.CosineSimilarity(req.Embedding1, req.Embedding2)
	if err != nil {
		if errors.Is(err, models.ErrDimensionMismatch) {
			respondError(c, http.StatusBadRequest, "Embedding dimensions don't match")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, types.SimilarityResponse{Similarity: similarity})
}
