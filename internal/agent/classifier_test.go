package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/OsherKoren/trip-assistant/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_PromptListsEveryTopic(t *testing.T) {
	model := &stubModel{classification: llm.Classification{Category: "flight", Confidence: 0.9}}
	classifier := NewClassifier(model)

	_, err := classifier.Classify(context.Background(), "What time is our flight?")
	require.NoError(t, err)

	require.Len(t, model.classifyPrompts, 1)
	prompt := model.classifyPrompts[0]

	for _, entry := range Catalog {
		assert.Contains(t, prompt, "- "+string(entry.Topic)+": "+entry.Description)
	}
	assert.Contains(t, prompt, "What time is our flight?")
}

func TestClassifier_ReturnsModelVerdict(t *testing.T) {
	model := &stubModel{classification: llm.Classification{Category: "aosta", Confidence: 0.72}}
	classifier := NewClassifier(model)

	result, err := classifier.Classify(context.Background(), "What's planned in Aosta?")
	require.NoError(t, err)

	assert.Equal(t, TopicAosta, result.Topic)
	assert.Equal(t, 0.72, result.Confidence)
}

func TestClassifier_PropagatesModelError(t *testing.T) {
	model := &stubModel{classifyErr: fmt.Errorf("bad gateway")}
	classifier := NewClassifier(model)

	_, err := classifier.Classify(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classification call failed")
}
