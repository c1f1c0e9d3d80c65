package tutor

import (
	"strings"
	"testing"
)

func TestParseShortAnswer_StripsOrdinals(t *testing.T) {
	raw := "1. What defines a psychological disorder?\n" +
		"\n" +
		"2) How do psychologists distinguish disorders from unconventional behavior?\n" +
		"3: What does etiology mean?\n"

	questions := ParseShortAnswer(raw)
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}

	want := []string{
		"What defines a psychological disorder?",
		"How do psychologists distinguish disorders from unconventional behavior?",
		"What does etiology mean?",
	}
	for i, q := range questions {
		if q.Kind != KindShortAnswer {
			t.Errorf("question %d: kind = %q, want %q", i+1, q.Kind, KindShortAnswer)
		}
		if q.Prompt != want[i] {
			t.Errorf("question %d: prompt = %q, want %q", i+1, q.Prompt, want[i])
		}
		if len(q.Options) != 0 || q.Correct != 0 {
			t.Errorf("question %d: short answer should have no options or correct reference", i+1)
		}
	}
}

func TestParseShortAnswer_EmptyInput(t *testing.T) {
	if got := ParseShortAnswer("\n  \n\n"); len(got) != 0 {
		t.Errorf("expected no questions, got %d", len(got))
	}
}

const validMCRaw = `Question 1: What does the passage primarily define?
A) The concept of a psychological disorder
B) The history of psychiatry
C) The process of peer review
D) The structure of the brain
Correct Answer: A

Question 2: Which behavior does the passage call clearly abnormal?
A) Feeling nervous around an attractive person
B) Washing hands forty times per day
C) Missing home during college
D) Disagreeing with a professor
Correct Answer: B`

func TestParseMultipleChoice_ValidBlocks(t *testing.T) {
	questions := ParseMultipleChoice(validMCRaw)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	q := questions[0]
	if q.Kind != KindMultipleChoice {
		t.Errorf("kind = %q, want %q", q.Kind, KindMultipleChoice)
	}
	if q.Prompt != "What does the passage primarily define?" {
		t.Errorf("unexpected prompt %q", q.Prompt)
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}
	if q.Options[0] != "The concept of a psychological disorder" {
		t.Errorf("unexpected option A: %q", q.Options[0])
	}
	if q.Correct != 1 {
		t.Errorf("correct = %d, want 1", q.Correct)
	}

	if questions[1].Correct != 2 {
		t.Errorf("question 2 correct = %d, want 2", questions[1].Correct)
	}
}

func TestParseMultipleChoice_DropsBlockMissingLabel(t *testing.T) {
	// Second block lacks its "C) " label: the split yields the wrong
	// field count and the block is dropped, not an error.
	raw := strings.Replace(validMCRaw, "C) Missing home during college\n", "", 1)

	questions := ParseMultipleChoice(raw)
	if len(questions) != 1 {
		t.Fatalf("expected 1 surviving question, got %d", len(questions))
	}
	if questions[0].Prompt != "What does the passage primarily define?" {
		t.Errorf("wrong block survived: %q", questions[0].Prompt)
	}
}

func TestParseMultipleChoice_DropsBlockWithBadAnswer(t *testing.T) {
	raw := strings.Replace(validMCRaw, "Correct Answer: B", "Correct Answer: E", 1)

	questions := ParseMultipleChoice(raw)
	if len(questions) != 1 {
		t.Fatalf("expected 1 surviving question, got %d", len(questions))
	}
}

func TestParseMultipleChoice_GarbageInput(t *testing.T) {
	if got := ParseMultipleChoice("the model refused to answer"); len(got) != 0 {
		t.Errorf("expected no questions from garbage, got %d", len(got))
	}
}

const validTFRaw = `Question 1: The passage claims consensus on abnormality is always easy.
T: True
F: False
Correct Answer: F

Question 2: Psychopathology is the study of psychological disorders.
T: True
F: False
Correct Answer: T`

func TestParseTrueFalse_ValidBlocks(t *testing.T) {
	questions := ParseTrueFalse(validTFRaw)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	if questions[0].Correct != 2 {
		t.Errorf("question 1 correct = %d, want 2 (False)", questions[0].Correct)
	}
	if questions[1].Correct != 1 {
		t.Errorf("question 2 correct = %d, want 1 (True)", questions[1].Correct)
	}
	if len(questions[0].Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(questions[0].Options))
	}
	if questions[0].Options[0] != "True" || questions[0].Options[1] != "False" {
		t.Errorf("unexpected options %v", questions[0].Options)
	}
	if questions[0].Kind != KindTrueFalse {
		t.Errorf("kind = %q, want %q", questions[0].Kind, KindTrueFalse)
	}
}

func TestParseTrueFalse_AcceptsOptionLetter(t *testing.T) {
	raw := strings.Replace(validTFRaw, "Correct Answer: F", "Correct Answer: B", 1)

	questions := ParseTrueFalse(raw)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].Correct != 2 {
		t.Errorf("correct = %d, want 2", questions[0].Correct)
	}
}

func TestParseTrueFalse_DropsMalformedBlock(t *testing.T) {
	raw := strings.Replace(validTFRaw, "F: False\nCorrect Answer: F", "Correct Answer: F", 1)

	questions := ParseTrueFalse(raw)
	if len(questions) != 1 {
		t.Fatalf("expected 1 surviving question, got %d", len(questions))
	}
}
