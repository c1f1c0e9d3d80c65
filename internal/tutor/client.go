package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

// LLMClient is the text-generation service boundary. It accepts a
// rendered prompt and returns a single free-text string; all structure
// is imposed downstream by the parsers. The call blocks and is not
// retried here.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

// ── APIClient — Anthropic SDK (Production) ─────────────────

type APIClient struct {
	client      *anthropic.Client
	model       string
	temperature float64
}

func NewAPIClient(model string, apiKey string, temperature float64) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	return &APIClient{client: &client, model: model, temperature: temperature}
}

func (c *APIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   2048,
		Temperature: param.NewOpt(c.temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic API: %w", err)
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return "", fmt.Errorf("no text content in API response")
	}

	return responseText, nil
}

// ── MockClient — Local Development ─────────────────────────

// MockClient sniffs the rendered prompt to decide which canned,
// format-correct response to return. It lets the full quiz loop run
// without an API key.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	switch {
	case strings.Contains(userPrompt, "multiple-choice questions"):
		return mockMultipleChoice, nil
	case strings.Contains(userPrompt, "true-or-false questions"):
		return mockTrueFalse, nil
	case strings.Contains(userPrompt, "Score:\nEvaluation:"):
		return "Score: 7/10\nEvaluation: [Mock] The answer covers the main idea but misses a key detail from the text.", nil
	case strings.Contains(userPrompt, "Summarize the following text"):
		return "[Mock] The text describes the subject in broad strokes and highlights its central themes.", nil
	case strings.Contains(userPrompt, "The correct answer is:"):
		return "[Mock] The correct option restates what the text says directly; the others contradict it.", nil
	default:
		return "1. [Mock] What is the central claim of the text?\n2. [Mock] Which evidence supports that claim?\n3. [Mock] What objection does the text anticipate?", nil
	}
}

const mockMultipleChoice = `Question 1: [Mock] What does the text primarily discuss?
A) The central subject of the passage
B) An unrelated historical event
C) A fictional narrative
D) A statistical appendix
Correct Answer: A

Question 2: [Mock] Which statement does the text support?
A) A claim it never makes
B) The claim stated in its opening
C) A claim it explicitly rejects
D) A claim about another subject
Correct Answer: B`

const mockTrueFalse = `Question 1: [Mock] The text addresses its stated subject.
T: True
F: False
Correct Answer: T

Question 2: [Mock] The text contradicts its own opening claim.
T: True
F: False
Correct Answer: F`
