package agent

import (
	"context"
	"fmt"

	"github.com/OsherKoren/trip-assistant/internal/llm"
)

// ModelClient is the narrow surface of the language model the agent
// depends on: one completion call and one structured classification call,
// both fallible, both invoked at most once per pipeline stage.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Classify(ctx context.Context, prompt string) (llm.Classification, error)
}

// ClassificationResult is the classifier's verdict for one question.
type ClassificationResult struct {
	Topic      Topic
	Confidence float64
}

// Classifier maps a free-text question to a topic with a single model
// call. It imposes no tie-break and no confidence floor of its own; the
// model resolves ambiguity and is instructed to prefer general when unsure.
type Classifier struct {
	model ModelClient
}

func NewClassifier(model ModelClient) *Classifier {
	return &Classifier{model: model}
}

// Classify returns the model's topic verdict for the question. The topic
// is returned as classified, without catalog membership enforcement; the
// pipeline normalizes unknown values. Errors are propagated so the caller
// can substitute the safe fallback.
func (c *Classifier) Classify(ctx context.Context, question string) (ClassificationResult, error) {
	classification, err := c.model.Classify(ctx, classifierPrompt(question))
	if err != nil {
		return ClassificationResult{}, fmt.Errorf("classification call failed: %w", err)
	}

	return ClassificationResult{
		Topic:      Topic(classification.Category),
		Confidence: classification.Confidence,
	}, nil
}
