//go:build integration

package llm

import (
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestIntegration_RealAPI(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("OPENAI_API_KEY required for integration tests")
	}

	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	client := NewClient(baseURL, apiKey, "gpt-4o-mini", logrus.New())

	answer, err := client.Complete(context.Background(), "Reply with the single word: pong")
	require.NoError(t, err)
	require.NotEmpty(t, answer)

	classification, err := client.Classify(context.Background(),
		`Classify the question "What time is our flight?" into one of: flight, general. `+
			`Respond with a JSON object containing "category" and "confidence" (0.0-1.0).`)
	require.NoError(t, err)
	require.NotEmpty(t, classification.Category)
	require.GreaterOrEqual(t, classification.Confidence, 0.0)
	require.LessOrEqual(t, classification.Confidence, 1.0)
}
