package handlers

import (
	"net/http"

	"github.com/OsherKoren/trip-assistant/internal/models"
	"github.com/OsherKoren/trip-assistant/internal/notify"
	"github.com/OsherKoren/trip-assistant/internal/repository"
	"github.com/OsherKoren/trip-assistant/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// FeedbackHandler stores answer ratings and notifies on negative feedback
type FeedbackHandler struct {
	repoManager *repository.RepositoryManager
	emailer     *notify.Emailer
	logger      *logrus.Logger
}

func NewFeedbackHandler(repoManager *repository.RepositoryManager, emailer *notify.Emailer, logger *logrus.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		repoManager: repoManager,
		emailer:     emailer,
		logger:      logger,
	}
}

// HandleFeedback records user feedback for an assistant answer
func (h *FeedbackHandler) HandleFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid feedback format", err)
		return
	}

	if h.repoManager == nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "Feedback storage not configured", nil)
		return
	}

	feedback := &models.Feedback{
		MessageContent: req.MessageContent,
		Category:       req.Category,
		Rating:         req.Rating,
		Comment:        req.Comment,
		UserSession:    h.getUserSession(c),
	}
	if req.MessageID != "" {
		feedback.MessageID = &req.MessageID
	}

	if err := h.repoManager.Feedback.Create(feedback); err != nil {
		h.logger.WithError(err).Error("Failed to save feedback")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to save feedback", err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"feedback_id": feedback.ID,
		"rating":      feedback.Rating,
	}).Info("Feedback recorded")

	// Fire-and-forget notification, only for negative feedback with a comment
	if h.emailer != nil && feedback.Rating == "down" && feedback.Comment != "" {
		go h.emailer.SendFeedbackNotification(feedback)
	}

	utils.SuccessResponse(c, http.StatusCreated, "Feedback recorded", models.FeedbackResponse{
		Status: "received",
		ID:     feedback.ID,
	})
}

func (h *FeedbackHandler) getUserSession(c *gin.Context) string {
	if session := c.GetHeader("X-Session-ID"); session != "" {
		return session
	}

	return utils.GenerateSessionID(c.ClientIP() + c.GetHeader("User-Agent"))
}
