package services

import (
	"context"
	"time"

	"github.com/educrate/educrate-backend/internal/generate"
	"github.com/educrate/educrate-backend/internal/types"
)

// ContentGenerator is the synthesis boundary the kit pipeline calls
// through. The default implementation expands deterministic templates;
// the interface exists so a real inference backend can slot in and so
// tests can inject failures.
type ContentGenerator interface {
	Summary(ctx context.Context, content string, style types.LearningStyle) (string, error)
	Flashcards(ctx context.Context, content string, count int) ([]generate.Flashcard, error)
	AudioScript(ctx context.Context, content string, style types.LearningStyle) (string, error)
	VisualDescription(ctx context.Context, concept string) (string, error)
	AnswerQuestion(ctx context.Context, question, context_ string, style types.LearningStyle) (string, error)
	BuildQAIndex(ctx context.Context, content, topic string) (generate.QAIndex, error)
}

type templateGenerator struct {
	delay time.Duration
}

// NewTemplateGenerator returns the deterministic generator. delay
// simulates per-call inference latency; the wait respects ctx so a
// cancelled request stops between steps.
func NewTemplateGenerator(delay time.Duration) ContentGenerator {
	return &templateGenerator{delay: delay}
}

func (g *templateGenerator) wait(ctx context.Context) error {
	if g.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(g.delay):
		return nil
	}
}

func (g *templateGenerator) Summary(ctx context.Context, content string, style types.LearningStyle) (string, error) {
	if err := g.wait(ctx); err != nil {
		return "", err
	}
	return generate.Summary(content, style), nil
}

func (g *templateGenerator) Flashcards(ctx context.Context, content string, count int) ([]generate.Flashcard, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	return generate.Flashcards(content, count), nil
}

func (g *templateGenerator) AudioScript(ctx context.Context, content string, style types.LearningStyle) (string, error) {
	if err := g.wait(ctx); err != nil {
		return "", err
	}
	return generate.AudioScript(content, style), nil
}

func (g *templateGenerator) VisualDescription(ctx context.Context, concept string) (string, error) {
	if err := g.wait(ctx); err != nil {
		return "", err
	}
	return generate.VisualDescription(concept), nil
}

func (g *templateGenerator) AnswerQuestion(ctx context.Context, question, context_ string, style types.LearningStyle) (string, error) {
	if err := g.wait(ctx); err != nil {
		return "", err
	}
	return generate.AnswerQuestion(question, context_, style), nil
}

func (g *templateGenerator) BuildQAIndex(ctx context.Context, content, topic string) (generate.QAIndex, error) {
	if err := g.wait(ctx); err != nil {
		return generate.QAIndex{}, err
	}
	return generate.BuildQAIndex(content, topic), nil
}
