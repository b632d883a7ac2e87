package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"embedsvc/orchestrator"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondServiceError maps orchestrator errors onto HTTP statuses.
// Validation details are client-safe and pass through; anything untagged is
// logged and replaced by a generic notice.
func respondServiceError(c *gin.Context, log zerolog.Logger, err error) {
	switch {
	case errors.Is(err, orchestrator.ErrValidation):
		respondError(c, http.StatusBadRequest, validationDetail(err))
	case errors.Is(err, orchestrator.ErrInvalidID):
		respondError(c, http.StatusBadRequest, "Invalid article ID format")
	case errors.Is(err, orchestrator.ErrNotFound):
		respondError(c, http.StatusNotFound, "Article not found")
	case errors.Is(err, orchestrator.ErrStorage):
		respondError(c, http.StatusInternalServerError, "Database error")
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func validationDetail(err error) string {
	msg := strings.TrimPrefix(err.Error(), orchestrator.ErrValidation.Error()+": ")
	if msg == "" || msg == orchestrator.ErrValidation.Error() {
		return "Invalid request"
	}
	return msg
}
