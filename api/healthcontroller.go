package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"embedsvc/orchestrator"
)

// RegisterHealthRoutes registers the health check endpoint.
func RegisterHealthRoutes(r *gin.Engine, svc *orchestrator.HealthService) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Check(c.Request.Context()))
	})
}
