package handlers

import (
	"net/http"
	"time"

	"github.com/OsherKoren/trip-assistant/internal/health"
	"github.com/OsherKoren/trip-assistant/internal/models"
	"github.com/gin-gonic/gin"
)

// HealthHandler exposes service and dependency health
type HealthHandler struct {
	checker *health.HealthChecker
}

func NewHealthHandler(checker *health.HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// HandleHealth reports overall service health. Without a configured
// checker (no database) it is a lightweight liveness probe.
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	response := models.HealthResponse{
		Status:    "healthy",
		Service:   "trip-assistant",
		Timestamp: time.Now().Format(time.RFC3339),
		Services:  map[string]string{},
	}

	if h.checker != nil {
		for _, svc := range h.checker.CheckAll() {
			response.Services[svc.Name] = svc.Status
			if svc.Status != "healthy" {
				response.Status = "degraded"
			}
		}
	}

	c.JSON(http.StatusOK, response)
}
