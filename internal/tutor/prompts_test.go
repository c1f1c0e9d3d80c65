package tutor

import (
	"context"
	"strings"
	"testing"
)

func TestRender_SubstitutesParameters(t *testing.T) {
	r := NewPromptRegistry("psychology")

	prompt, err := r.Render(TemplateShortAnswerQuestions, map[string]string{
		"count": "5",
		"text":  "the passage body",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	for _, keyword := range []string{"psychology", "5", "the passage body", "separated by a new line"} {
		if !strings.Contains(prompt, keyword) {
			t.Errorf("prompt missing %q", keyword)
		}
	}
	if strings.Contains(prompt, "{count}") || strings.Contains(prompt, "{text}") {
		t.Error("placeholders left unsubstituted")
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	r := NewPromptRegistry("psychology")
	if _, err := r.Render(TemplateID("bogus"), nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestMultipleChoiceTemplate_MatchesParserGrammar(t *testing.T) {
	r := NewPromptRegistry("psychology")

	prompt, err := r.Render(TemplateMultipleChoiceQuestions, map[string]string{"count": "3", "text": "t"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// The instructed output format must carry the exact markers the
	// parser splits on.
	for _, marker := range []string{"Question 1:", "A) ", "B) ", "C) ", "D) ", "Correct Answer:"} {
		if !strings.Contains(prompt, marker) {
			t.Errorf("multiple-choice template missing marker %q", marker)
		}
	}
}

func TestTrueFalseTemplate_MatchesParserGrammar(t *testing.T) {
	r := NewPromptRegistry("psychology")

	prompt, err := r.Render(TemplateTrueFalseQuestions, map[string]string{"count": "3", "text": "t"})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	for _, marker := range []string{"Question 1:", "T: ", "F: ", "Correct Answer:"} {
		if !strings.Contains(prompt, marker) {
			t.Errorf("true/false template missing marker %q", marker)
		}
	}
}

func TestEvaluationTemplate_RequestsScoreFormat(t *testing.T) {
	r := NewPromptRegistry("psychology")

	prompt, err := r.Render(TemplateShortAnswerEvaluation, map[string]string{
		"text":     "t",
		"question": "q",
		"answer":   "a",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	for _, keyword := range []string{"1-10", "Score:", "Evaluation:"} {
		if !strings.Contains(prompt, keyword) {
			t.Errorf("evaluation template missing %q", keyword)
		}
	}
}

func TestMockClient_FeedsParsers(t *testing.T) {
	tut := New(NewMockClient(), "psychology")

	mc, err := tut.MultipleChoiceQuestions(context.Background(), "text", 2)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(mc) == 0 {
		t.Error("mock multiple-choice output did not survive the parser")
	}

	tf, err := tut.TrueFalseQuestions(context.Background(), "text", 2)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(tf) == 0 {
		t.Error("mock true/false output did not survive the parser")
	}

	sa, err := tut.ShortAnswerQuestions(context.Background(), "text", 3)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(sa) != 3 {
		t.Errorf("expected 3 short-answer questions, got %d", len(sa))
	}
}
