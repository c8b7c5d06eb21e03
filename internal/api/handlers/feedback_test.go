package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newFeedbackRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewFeedbackHandler(nil, nil, quietLogger())

	router := gin.New()
	router.POST("/api/v1/feedback", handler.HandleFeedback)
	return router
}

func TestHandleFeedback_InvalidRating(t *testing.T) {
	router := newFeedbackRouter()

	w := postJSON(t, router, "/api/v1/feedback", map[string]string{
		"message_content": "Your flight departs at 10:00 AM",
		"rating":          "sideways",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleFeedback_MissingContent(t *testing.T) {
	router := newFeedbackRouter()

	w := postJSON(t, router, "/api/v1/feedback", map[string]string{
		"rating": "up",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleFeedback_NoStorageConfigured(t *testing.T) {
	router := newFeedbackRouter()

	w := postJSON(t, router, "/api/v1/feedback", map[string]string{
		"message_content": "Your flight departs at 10:00 AM",
		"rating":          "down",
		"comment":         "Wrong time",
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
