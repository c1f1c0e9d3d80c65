package tutor

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
)

// EvaluationResult is the outcome of grading one submitted answer.
// Score is 0-10; for option questions it is binary (10 or 0).
type EvaluationResult struct {
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

// EvaluateChoice grades a multiple-choice or true/false submission
// against its encoded token. The submission may be an option letter
// (any case) or a bare 1-based index. The only error path is a token
// that does not decode; everything after that degrades locally.
func (t *Tutor) EvaluateChoice(ctx context.Context, token string, submitted string) (EvaluationResult, error) {
	q, err := DecodeToken(token)
	if err != nil {
		return EvaluationResult{}, err
	}

	ordinal := resolveSubmission(submitted)

	score := 0
	if ordinal == q.Correct {
		score = 10
	}

	return EvaluationResult{
		Score:       score,
		Explanation: t.explainChoice(ctx, q, ordinal, submitted),
	}, nil
}

// EvaluateShortAnswer grades a free-text answer by asking the
// generation service for a critique and extracting a score from it.
// It always returns a well-formed result: a missing source text is
// replaced by the MissingText sentinel before the call, and a failed
// or empty generation is replaced by it after.
func (t *Tutor) EvaluateShortAnswer(ctx context.Context, sourceText, question, answer string) EvaluationResult {
	critique, err := t.generate(ctx, TemplateShortAnswerEvaluation, map[string]string{
		"text":     orMissing(sourceText),
		"question": question,
		"answer":   answer,
	})
	if err != nil || strings.TrimSpace(critique) == "" {
		log.Printf("WARNING: short-answer evaluation unavailable: %v", err)
		critique = MissingText
	}

	score, _ := strconv.Atoi(ExtractScore(critique))
	return EvaluationResult{
		Score:       score,
		Explanation: ExtractExplanation(critique),
	}
}

// explainChoice asks the generation service to justify the correct
// option against the submitted one. If the service is unavailable the
// explanation falls back to naming the correct option.
func (t *Tutor) explainChoice(ctx context.Context, q Question, ordinal int, submitted string) string {
	correct := labelledOption(q, q.Correct)
	chosen := labelledOption(q, ordinal)
	if chosen == "" {
		chosen = submitted
	}

	explanation, err := t.generate(ctx, TemplateChoiceExplanation, map[string]string{
		"question":  q.Prompt,
		"correct":   correct,
		"submitted": chosen,
	})
	if err != nil || strings.TrimSpace(explanation) == "" {
		log.Printf("WARNING: choice explanation unavailable: %v", err)
		return fmt.Sprintf("The correct answer was %s.", correct)
	}
	return strings.TrimSpace(explanation)
}

func labelledOption(q Question, ordinal int) string {
	if ordinal < 1 || ordinal > len(q.Options) {
		return ""
	}
	return fmt.Sprintf("%s) %s", NumberToLetters(ordinal), q.Options[ordinal-1])
}

// resolveSubmission maps a submitted answer to a 1-based ordinal:
// digits are taken as the ordinal directly, anything else goes through
// the letter codec. Unresolvable input yields 0, which matches no
// option.
func resolveSubmission(submitted string) int {
	s := strings.TrimSpace(submitted)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	n, err := LettersToNumber(s)
	if err != nil {
		return 0
	}
	return n
}

// ExtractScore finds the numeric score in a critique. Slashes are
// replaced with spaces first so "7/10" reads as two tokens, then the
// first purely numeric token wins. "0" if none is found.
func ExtractScore(critique string) string {
	for _, field := range strings.Fields(strings.ReplaceAll(critique, "/", " ")) {
		if isDigits(field) {
			return field
		}
	}
	return "0"
}

// ExtractExplanation returns the text after the literal "Evaluation:"
// marker, or the whole critique if the marker is absent.
func ExtractExplanation(critique string) string {
	if i := strings.Index(critique, "Evaluation:"); i >= 0 {
		return strings.TrimSpace(critique[i+len("Evaluation:"):])
	}
	return strings.TrimSpace(critique)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
