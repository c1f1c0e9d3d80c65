package tutor

import (
	"fmt"
	"strings"
)

type QuestionKind string

const (
	KindShortAnswer    QuestionKind = "short_answer"
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindTrueFalse      QuestionKind = "true_false"
)

// Question is one unit of assessment as produced by the parsers.
// Correct is the 1-based ordinal of the right option; it is 0 for
// short-answer questions, which are graded by the LLM instead.
type Question struct {
	Kind    QuestionKind
	Prompt  string
	Options []string
	Correct int
}

// TokenDelimiter separates the fields of an encoded question token.
// It is a fixed part of the wire contract: clients that want to detect
// question kind from field count must split on the same literal.
// The sequence was chosen to be vanishingly unlikely in natural text;
// if a prompt or option does contain it, decode results are undefined.
// That limitation is accepted rather than handled — see DESIGN.md.
const TokenDelimiter = "#|#"

// ErrBadToken is returned when a token's field count matches no known
// question kind. This is a caller error, not a recoverable condition.
var ErrBadToken = fmt.Errorf("token does not decode to a known question kind")

// EncodeToken packs a question into a single opaque string:
// prompt, options in order, then the correct-answer letter. The token
// is the only state carried between question delivery and answer
// submission; the server keeps nothing.
func EncodeToken(q Question) string {
	fields := make([]string, 0, len(q.Options)+2)
	fields = append(fields, q.Prompt)
	fields = append(fields, q.Options...)
	fields = append(fields, NumberToLetters(q.Correct))
	return strings.Join(fields, TokenDelimiter)
}

// DecodeToken reverses EncodeToken. The question kind is inferred from
// the field count: 6 fields is multiple choice (prompt + 4 options +
// letter), 4 is true/false. Anything else is rejected outright rather
// than guessed at.
func DecodeToken(token string) (Question, error) {
	fields := strings.Split(token, TokenDelimiter)

	var kind QuestionKind
	switch len(fields) {
	case 6:
		kind = KindMultipleChoice
	case 4:
		kind = KindTrueFalse
	default:
		return Question{}, ErrBadToken
	}

	letter := fields[len(fields)-1]
	correct, err := LettersToNumber(letter)
	if err != nil {
		return Question{}, fmt.Errorf("token correct-answer field: %w", err)
	}

	options := fields[1 : len(fields)-1]
	if correct < 1 || correct > len(options) {
		return Question{}, fmt.Errorf("token correct answer %q out of range for %d options", letter, len(options))
	}

	return Question{
		Kind:    kind,
		Prompt:  fields[0],
		Options: options,
		Correct: correct,
	}, nil
}
