package tutor

import (
	"errors"
	"strings"
	"testing"
)

func TestTokenRoundTrip_MultipleChoice(t *testing.T) {
	q := Question{
		Kind:    KindMultipleChoice,
		Prompt:  "Which discipline studies psychological disorders?",
		Options: []string{"Psychopathology", "Etymology", "Cartography", "Phrenology"},
		Correct: 1,
	}

	decoded, err := DecodeToken(EncodeToken(q))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if decoded.Kind != KindMultipleChoice {
		t.Errorf("kind = %q, want %q", decoded.Kind, KindMultipleChoice)
	}
	if decoded.Prompt != q.Prompt {
		t.Errorf("prompt = %q, want %q", decoded.Prompt, q.Prompt)
	}
	if len(decoded.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(decoded.Options))
	}
	for i, opt := range q.Options {
		if decoded.Options[i] != opt {
			t.Errorf("option %d = %q, want %q", i, decoded.Options[i], opt)
		}
	}
	if decoded.Correct != q.Correct {
		t.Errorf("correct = %d, want %d", decoded.Correct, q.Correct)
	}
}

func TestTokenRoundTrip_TrueFalse(t *testing.T) {
	q := Question{
		Kind:    KindTrueFalse,
		Prompt:  "Psychopathology can refer to the manifestation of a disorder.",
		Options: []string{"True", "False"},
		Correct: 2,
	}

	decoded, err := DecodeToken(EncodeToken(q))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if decoded.Kind != KindTrueFalse {
		t.Errorf("kind = %q, want %q", decoded.Kind, KindTrueFalse)
	}
	if decoded.Correct != 2 {
		t.Errorf("correct = %d, want 2", decoded.Correct)
	}
}

func TestEncodeToken_LastFieldIsLetter(t *testing.T) {
	q := Question{
		Kind:    KindMultipleChoice,
		Prompt:  "prompt",
		Options: []string{"w", "x", "y", "z"},
		Correct: 3,
	}
	fields := strings.Split(EncodeToken(q), TokenDelimiter)
	if fields[len(fields)-1] != "C" {
		t.Errorf("last field = %q, want C", fields[len(fields)-1])
	}
}

func TestDecodeToken_UnknownFieldCount(t *testing.T) {
	bad := []string{
		"no delimiter at all",
		"prompt" + TokenDelimiter + "A",
		strings.Join([]string{"p", "a", "b", "c", "d", "e", "A"}, TokenDelimiter),
	}
	for _, token := range bad {
		_, err := DecodeToken(token)
		if !errors.Is(err, ErrBadToken) {
			t.Errorf("DecodeToken(%q): expected ErrBadToken, got %v", token, err)
		}
	}
}

func TestDecodeToken_CorrectOutOfRange(t *testing.T) {
	token := strings.Join([]string{"prompt", "a", "b", "c", "d", "E"}, TokenDelimiter)
	if _, err := DecodeToken(token); err == nil {
		t.Fatal("expected error for out-of-range correct answer")
	}
}

func TestDecodeToken_BadLetterField(t *testing.T) {
	token := strings.Join([]string{"prompt", "a", "b", "c", "d", "4!"}, TokenDelimiter)
	if _, err := DecodeToken(token); err == nil {
		t.Fatal("expected error for unparseable correct-answer field")
	}
}
