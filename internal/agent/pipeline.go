package agent

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Result is the record assembled across the pipeline stages for one
// request. It is owned by a single in-flight request and never shared.
type Result struct {
	Question   string  `json:"question"`
	Topic      Topic   `json:"category"`
	Confidence float64 `json:"confidence"`
	Context    string  `json:"-"`
	Answer     string  `json:"answer"`
	Source     *string `json:"source"`
}

// Pipeline sequences classifier → context resolver → specialist for one
// question. Every run completes with a populated Result: the two model
// stages convert their failures into safe fallback values instead of
// aborting, so there is no error path out of Run.
type Pipeline struct {
	classifier *Classifier
	specialist *Specialist
	store      *DocumentStore
	logger     *logrus.Logger
}

func NewPipeline(model ModelClient, store *DocumentStore, logger *logrus.Logger) *Pipeline {
	return &Pipeline{
		classifier: NewClassifier(model),
		specialist: NewSpecialist(model),
		store:      store,
		logger:     logger,
	}
}

// runStage executes one fallible pipeline stage and substitutes fallback
// on error, logging the stage name and the underlying failure. Both
// model-calling stages share this recover-and-substitute policy.
func runStage[T any](logger *logrus.Logger, stage string, fn func() (T, error), fallback T) T {
	out, err := fn()
	if err != nil {
		logger.WithError(err).WithField("stage", stage).Error("Pipeline stage failed, using fallback")
		return fallback
	}
	return out
}

// Run executes the full pipeline for one question. The three stages are
// strictly sequential; the classified topic doubles as the dispatch key
// for both the context lookup and the specialist prompt. No retries, no
// re-classification, one model call per model stage.
func (p *Pipeline) Run(ctx context.Context, question string) *Result {
	classification := runStage(p.logger, "classifier",
		func() (ClassificationResult, error) { return p.classifier.Classify(ctx, question) },
		ClassificationResult{Topic: TopicGeneral, Confidence: 0.0},
	)

	topic := classification.Topic
	if _, ok := LookupTopic(topic); !ok {
		p.logger.WithField("category", topic).Warn("Classifier returned unknown category, routing to general")
		topic = TopicGeneral
	}

	contextText := ResolveContext(topic, p.store)

	answer := runStage(p.logger, "specialist",
		func() (string, error) { return p.specialist.Answer(ctx, topic, question, contextText) },
		FallbackAnswer(topic),
	)

	return &Result{
		Question:   question,
		Topic:      topic,
		Confidence: classification.Confidence,
		Context:    contextText,
		Answer:     answer,
		Source:     SourceLabel(topic),
	}
}
