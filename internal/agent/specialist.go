package agent

import (
	"context"
	"fmt"
)

// Specialist answers a question from the resolved context with a single
// model call. All topics share one algorithm, parameterized by the
// catalog entry; only the general topic swaps the prompt framing from
// "answer strictly from context" to "ask for clarification when vague".
type Specialist struct {
	model ModelClient
}

func NewSpecialist(model ModelClient) *Specialist {
	return &Specialist{model: model}
}

// Answer generates an answer for the question using only the provided
// context. Errors are propagated so the caller can substitute the
// topic-aware apology.
func (s *Specialist) Answer(ctx context.Context, topic Topic, question, docContext string) (string, error) {
	entry, ok := LookupTopic(topic)
	if !ok {
		entry = catalogByTopic[TopicGeneral]
	}

	var prompt string
	if entry.Topic == TopicGeneral {
		prompt = generalPrompt(docContext, question)
	} else {
		prompt = specialistPrompt(entry.Label, docContext, question)
	}

	answer, err := s.model.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s specialist call failed: %w", entry.Topic, err)
	}

	return answer, nil
}

// FallbackAnswer is the fixed user-facing apology substituted when the
// answering call fails. It names the topic and invites a retry; it never
// exposes the underlying error.
func FallbackAnswer(topic Topic) string {
	entry, ok := LookupTopic(topic)
	if !ok || entry.Topic == TopicGeneral {
		return "Sorry, I couldn't process your question right now. " +
			"Please try rephrasing or asking something more specific."
	}
	return fmt.Sprintf("Sorry, I couldn't retrieve %s information right now. Please try again.", entry.Label)
}
