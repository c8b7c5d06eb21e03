package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Client talks to an OpenAI-compatible chat-completions endpoint. It makes
// exactly one HTTP call per operation; retry policy belongs to callers,
// and the pipeline deliberately has none.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL, apiKey, model string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// Complete sends a single-prompt completion request and returns the raw
// text of the model's answer.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	return c.chat(ctx, prompt, nil)
}

// Classify sends a classification prompt with the JSON response format
// enabled and parses the result into a Classification. Any shape violation
// (missing category, confidence out of range) is an error; the caller
// decides the fallback.
func (c *Client) Classify(ctx context.Context, prompt string) (Classification, error) {
	content, err := c.chat(ctx, prompt, &responseFormat{Type: "json_object"})
	if err != nil {
		return Classification{}, err
	}

	jsonContent := extractJSON(content)
	if jsonContent == "" {
		return Classification{}, fmt.Errorf("no JSON object in model response")
	}

	var classification Classification
	if err := json.Unmarshal([]byte(jsonContent), &classification); err != nil {
		return Classification{}, fmt.Errorf("failed to parse classification: %w", err)
	}

	if classification.Category == "" {
		return Classification{}, fmt.Errorf("classification missing category")
	}
	if classification.Confidence < 0.0 || classification.Confidence > 1.0 {
		return Classification{}, fmt.Errorf("confidence %.2f outside [0.0, 1.0]", classification.Confidence)
	}

	return classification, nil
}

func (c *Client) chat(ctx context.Context, prompt string, format *responseFormat) (string, error) {
	payload := chatRequest{
		Model:          c.model,
		Messages:       []chatMessage{{Role: "user", Content: prompt}},
		Temperature:    0,
		ResponseFormat: format,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := c.baseURL + "/chat/completions"

	c.logger.WithFields(logrus.Fields{
		"url":          url,
		"model":        c.model,
		"payload_size": len(jsonData),
	}).Debug("Making chat completion request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"status_code":   resp.StatusCode,
		"response_size": len(responseBody),
	}).Debug("Chat completion response received")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(responseBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(responseBody, &chatResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("response contained no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}

// extractJSON returns the outermost JSON object embedded in a model
// response, tolerating prose or code fences around it.
func extractJSON(response string) string {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return response[start : end+1]
}
