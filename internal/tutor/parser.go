package tutor

import (
	"log"
	"regexp"
	"strings"
)

// The generation service is a language model instructed through a
// prompt template, not a structured API, so none of these formats are
// guaranteed. Parsing is best-effort: a record that does not match the
// expected shape for its kind is dropped and the rest of the batch
// survives. Nothing here returns an error.

// blockMarker starts each option-style question block in the raw text.
const blockMarker = "Question"

// Expected field counts after splitting a block on its label markers.
// Multiple choice: leading number artifact, prompt, options A-D,
// correct letter. True/false: artifact, prompt, two options, letter.
const (
	mcFieldCount = 7
	tfFieldCount = 5
)

var (
	ordinalPrefix = regexp.MustCompile(`^\s*[0-9]+[.):]\s*`)
	mcFieldSplit  = regexp.MustCompile(`[0-9]+[.:] |A\) |B\) |C\) |D\) |Correct Answer: `)
	tfFieldSplit  = regexp.MustCompile(`[0-9]+[.:] |T: |F: |Correct Answer: `)
)

// ParseShortAnswer splits a generation into one question per
// non-empty line, stripping any leading "N. " style numbering the
// model added on its own.
func ParseShortAnswer(raw string) []Question {
	var questions []Question
	for _, line := range strings.Split(raw, "\n") {
		line = ordinalPrefix.ReplaceAllString(strings.TrimSpace(line), "")
		if line == "" {
			continue
		}
		questions = append(questions, Question{
			Kind:   KindShortAnswer,
			Prompt: line,
		})
	}
	return questions
}

// ParseMultipleChoice extracts question blocks of the form
//
//	Question 1: <prompt>
//	A) <option> ... D) <option>
//	Correct Answer: <letter>
//
// Embedded line breaks are collapsed first, then the text is split on
// the block marker and each block on the label alternation. A block
// whose split does not yield exactly mcFieldCount fields, or whose
// correct-answer letter does not resolve to one of its options, is
// discarded.
func ParseMultipleChoice(raw string) []Question {
	var questions []Question
	for _, block := range splitBlocks(raw) {
		fields := mcFieldSplit.Split(block, -1)
		if len(fields) != mcFieldCount {
			log.Printf("WARNING: dropping malformed multiple-choice block (%d fields, want %d)", len(fields), mcFieldCount)
			continue
		}

		correct, err := LettersToNumber(fields[mcFieldCount-1])
		if err != nil || correct < 1 || correct > 4 {
			log.Printf("WARNING: dropping multiple-choice block with unresolvable answer %q", fields[mcFieldCount-1])
			continue
		}

		questions = append(questions, Question{
			Kind:    KindMultipleChoice,
			Prompt:  strings.TrimSpace(fields[1]),
			Options: trimFields(fields[2:6]),
			Correct: correct,
		})
	}
	return questions
}

// ParseTrueFalse uses the same block strategy as ParseMultipleChoice
// with the two-option labels "T: " and "F: ".
func ParseTrueFalse(raw string) []Question {
	var questions []Question
	for _, block := range splitBlocks(raw) {
		fields := tfFieldSplit.Split(block, -1)
		if len(fields) != tfFieldCount {
			log.Printf("WARNING: dropping malformed true/false block (%d fields, want %d)", len(fields), tfFieldCount)
			continue
		}

		correct, ok := resolveTrueFalse(fields[tfFieldCount-1])
		if !ok {
			log.Printf("WARNING: dropping true/false block with unresolvable answer %q", fields[tfFieldCount-1])
			continue
		}

		questions = append(questions, Question{
			Kind:    KindTrueFalse,
			Prompt:  strings.TrimSpace(fields[1]),
			Options: trimFields(fields[2:4]),
			Correct: correct,
		})
	}
	return questions
}

func splitBlocks(raw string) []string {
	collapsed := strings.ReplaceAll(raw, "\n", " ")
	var blocks []string
	for _, b := range strings.Split(collapsed, blockMarker) {
		if strings.TrimSpace(b) == "" {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// resolveTrueFalse maps a correct-answer marker to an ordinal: the
// model is asked for T or F, but a plain option letter resolves too.
func resolveTrueFalse(s string) (int, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "T", "TRUE":
		return 1, true
	case "F", "FALSE":
		return 2, true
	}
	n, err := LettersToNumber(s)
	if err != nil || n < 1 || n > 2 {
		return 0, false
	}
	return n, true
}

func trimFields(fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
	}
	return out
}
