package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionBody(content string) chatResponse {
	return chatResponse{
		Choices: []chatChoice{{
			Message:      chatMessage{Role: "assistant", Content: content},
			FinishReason: "stop",
		}},
	}
}

func TestClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Nil(t, req.ResponseFormat)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody("Your flight departs at 10:00 AM"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4o-mini", logrus.New())

	answer, err := client.Complete(context.Background(), "What time is our flight?")
	require.NoError(t, err)
	assert.Equal(t, "Your flight departs at 10:00 AM", answer)
}

func TestClient_Classify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody(`{"category": "flight", "confidence": 0.95}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4o-mini", logrus.New())

	classification, err := client.Classify(context.Background(), "classify this")
	require.NoError(t, err)
	assert.Equal(t, "flight", classification.Category)
	assert.Equal(t, 0.95, classification.Confidence)
}

func TestClient_ClassifyToleratesSurroundingProse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody(
			"Here is the classification:\n```json\n{\"category\": \"chamonix\", \"confidence\": 0.8}\n```"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4o-mini", logrus.New())

	classification, err := client.Classify(context.Background(), "classify this")
	require.NoError(t, err)
	assert.Equal(t, "chamonix", classification.Category)
}

func TestClient_ClassifyRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no JSON", "I cannot classify this."},
		{"missing category", `{"confidence": 0.9}`},
		{"confidence too high", `{"category": "flight", "confidence": 1.7}`},
		{"confidence negative", `{"category": "flight", "confidence": -0.1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(completionBody(tt.content))
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-key", "gpt-4o-mini", logrus.New())

			_, err := client.Classify(context.Background(), "classify this")
			assert.Error(t, err)
		})
	}
}

func TestClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4o-mini", logrus.New())

	_, err := client.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse{})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4o-mini", logrus.New())

	_, err := client.Complete(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gpt-4o-mini", logrus.New())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, "hello")
	assert.Error(t, err)
}
