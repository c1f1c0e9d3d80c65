package tutor

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// MissingText is substituted wherever required source text is absent
// or the generation service came back empty. Downstream code always
// has a stable non-empty string to operate on.
const MissingText = "ERROR"

// Tutor wraps an LLMClient with the prompt registry and the quiz
// generation/evaluation methods. It holds no per-request state; every
// method is a pure function of its inputs plus one generation call.
type Tutor struct {
	llm     LLMClient
	prompts *PromptRegistry
}

func New(llm LLMClient, topic string) *Tutor {
	return &Tutor{
		llm:     llm,
		prompts: NewPromptRegistry(topic),
	}
}

func (t *Tutor) generate(ctx context.Context, id TemplateID, params map[string]string) (string, error) {
	prompt, err := t.prompts.Render(id, params)
	if err != nil {
		return "", err
	}
	text, err := t.llm.Generate(ctx, SystemMessage, prompt)
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", id, err)
	}
	return text, nil
}

// Summarize produces a short summary of the source text.
func (t *Tutor) Summarize(ctx context.Context, text string) (string, error) {
	raw, err := t.generate(ctx, TemplateSummarize, map[string]string{"text": orMissing(text)})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// ShortAnswerQuestions generates count open questions about the text.
func (t *Tutor) ShortAnswerQuestions(ctx context.Context, text string, count int) ([]Question, error) {
	raw, err := t.generate(ctx, TemplateShortAnswerQuestions, map[string]string{
		"count": strconv.Itoa(count),
		"text":  orMissing(text),
	})
	if err != nil {
		return nil, err
	}
	return ParseShortAnswer(raw), nil
}

// MultipleChoiceQuestions generates count four-option questions about
// the text. Malformed blocks in the generation are dropped, so the
// result may hold fewer than count questions.
func (t *Tutor) MultipleChoiceQuestions(ctx context.Context, text string, count int) ([]Question, error) {
	raw, err := t.generate(ctx, TemplateMultipleChoiceQuestions, map[string]string{
		"count": strconv.Itoa(count),
		"text":  orMissing(text),
	})
	if err != nil {
		return nil, err
	}
	return ParseMultipleChoice(raw), nil
}

// TrueFalseQuestions generates count true-or-false statements about
// the text, with the same drop-on-malformed tolerance.
func (t *Tutor) TrueFalseQuestions(ctx context.Context, text string, count int) ([]Question, error) {
	raw, err := t.generate(ctx, TemplateTrueFalseQuestions, map[string]string{
		"count": strconv.Itoa(count),
		"text":  orMissing(text),
	})
	if err != nil {
		return nil, err
	}
	return ParseTrueFalse(raw), nil
}

func orMissing(text string) string {
	if strings.TrimSpace(text) == "" {
		return MissingText
	}
	return text
}
