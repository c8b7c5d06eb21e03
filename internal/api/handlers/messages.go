package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/OsherKoren/trip-assistant/internal/agent"
	"github.com/OsherKoren/trip-assistant/internal/database"
	"github.com/OsherKoren/trip-assistant/internal/models"
	"github.com/OsherKoren/trip-assistant/internal/repository"
	"github.com/OsherKoren/trip-assistant/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const answerCacheTTL = 5 * time.Minute

// MessageHandler serves the question-answering endpoint. The repository
// manager and cache may be nil when persistence is not configured; the
// assistant itself never depends on them.
type MessageHandler struct {
	pipeline    *agent.Pipeline
	repoManager *repository.RepositoryManager
	cache       *database.Cache
	logger      *logrus.Logger
}

func NewMessageHandler(
	pipeline *agent.Pipeline,
	repoManager *repository.RepositoryManager,
	cache *database.Cache,
	logger *logrus.Logger,
) *MessageHandler {
	return &MessageHandler{
		pipeline:    pipeline,
		repoManager: repoManager,
		cache:       cache,
		logger:      logger,
	}
}

// HandleMessage answers a user question about the trip
func (h *MessageHandler) HandleMessage(c *gin.Context) {
	startTime := time.Now()

	var req models.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid message request")
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	// Empty-question validation lives here, not in the pipeline
	question := strings.TrimSpace(req.Question)
	if question == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Question cannot be empty", nil)
		return
	}

	if len(question) > 2000 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Question too long (max 2000 characters)", nil)
		return
	}

	userSession := h.getUserSession(c)

	h.logger.WithFields(logrus.Fields{
		"question_preview": preview(question, 50),
		"user_session":     userSession,
	}).Info("Processing message request")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 90*time.Second)
	defer cancel()

	cacheKey := utils.MD5Hash(strings.ToLower(question))

	var result *agent.Result
	if h.cache != nil {
		cached := &agent.Result{}
		if err := h.cache.GetCachedAnswer(ctx, cacheKey, cached); err == nil {
			h.logger.Debug("Answer served from cache")
			result = cached
		}
	}

	if result == nil {
		result = h.pipeline.Run(ctx, question)

		if h.cache != nil {
			if err := h.cache.CacheAnswer(ctx, cacheKey, result, answerCacheTTL); err != nil {
				h.logger.WithError(err).Warn("Failed to cache answer")
			}
		}
	}

	responseTime := time.Since(startTime)

	if h.repoManager != nil {
		go h.persistMessage(result, userSession, responseTime)
	}

	h.logger.WithFields(logrus.Fields{
		"category":      result.Topic,
		"confidence":    result.Confidence,
		"response_time": responseTime.Milliseconds(),
	}).Info("Message processed successfully")

	utils.SuccessResponse(c, http.StatusOK, "Message processed", models.MessageResponse{
		Answer:     result.Answer,
		Category:   string(result.Topic),
		Confidence: result.Confidence,
		Source:     result.Source,
	})
}

func (h *MessageHandler) getUserSession(c *gin.Context) string {
	if session := c.GetHeader("X-Session-ID"); session != "" {
		return session
	}

	return utils.GenerateSessionID(c.ClientIP() + c.GetHeader("User-Agent"))
}

func (h *MessageHandler) persistMessage(result *agent.Result, userSession string, responseTime time.Duration) {
	message := &models.Message{
		Question:       result.Question,
		Answer:         result.Answer,
		Category:       string(result.Topic),
		Confidence:     result.Confidence,
		Source:         result.Source,
		UserSession:    userSession,
		ResponseTimeMs: int(responseTime.Milliseconds()),
	}

	if err := h.repoManager.Message.Create(message); err != nil {
		h.logger.WithError(err).Error("Failed to persist message")
	}
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
