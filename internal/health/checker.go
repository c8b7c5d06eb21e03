package health

import (
	"net/http"
	"time"

	"github.com/OsherKoren/trip-assistant/internal/database"
	"github.com/OsherKoren/trip-assistant/internal/models"
	"github.com/sirupsen/logrus"
)

// HealthChecker manages health checks for all backing services
type HealthChecker struct {
	dbManager  *database.Manager
	healthRepo models.SystemHealthRepository
	logger     *logrus.Logger
	llmBaseURL string
}

func NewHealthChecker(dbManager *database.Manager, healthRepo models.SystemHealthRepository, logger *logrus.Logger, llmBaseURL string) *HealthChecker {
	return &HealthChecker{
		dbManager:  dbManager,
		healthRepo: healthRepo,
		logger:     logger,
		llmBaseURL: llmBaseURL,
	}
}

// ServiceHealth represents the health status of a service
type ServiceHealth struct {
	Name         string `json:"name"`
	Status       string `json:"status"`
	ResponseTime int    `json:"response_time_ms"`
	Error        string `json:"error,omitempty"`
	LastChecked  string `json:"last_checked"`
}

// CheckPostgreSQL checks PostgreSQL database health
func (h *HealthChecker) CheckPostgreSQL() ServiceHealth {
	start := time.Now()
	err := h.dbManager.PingDatabase()
	return h.record("postgresql", start, err)
}

// CheckRedis checks Redis cache health
func (h *HealthChecker) CheckRedis() ServiceHealth {
	start := time.Now()
	err := h.dbManager.PingRedis()
	return h.record("redis", start, err)
}

// CheckLLM checks that the model endpoint responds at all. A 401 from an
// unauthenticated probe still proves reachability, so any HTTP response
// counts as healthy.
func (h *HealthChecker) CheckLLM() ServiceHealth {
	start := time.Now()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(h.llmBaseURL + "/models")
	if resp != nil {
		resp.Body.Close()
	}

	return h.record("llm", start, err)
}

// CheckAll runs every check and returns the statuses
func (h *HealthChecker) CheckAll() []ServiceHealth {
	return []ServiceHealth{
		h.CheckPostgreSQL(),
		h.CheckRedis(),
		h.CheckLLM(),
	}
}

func (h *HealthChecker) record(name string, start time.Time, err error) ServiceHealth {
	responseTime := int(time.Since(start).Milliseconds())

	status := "healthy"
	errorMsg := ""
	if err != nil {
		status = "unhealthy"
		errorMsg = err.Error()
		h.logger.WithError(err).WithField("service", name).Error("Health check failed")
	}

	if h.healthRepo != nil {
		if repoErr := h.healthRepo.UpdateServiceHealth(name, status, responseTime, errorMsg); repoErr != nil {
			h.logger.WithError(repoErr).Warn("Failed to persist health status")
		}
	}

	return ServiceHealth{
		Name:         name,
		Status:       status,
		ResponseTime: responseTime,
		Error:        errorMsg,
		LastChecked:  time.Now().Format(time.RFC3339),
	}
}
