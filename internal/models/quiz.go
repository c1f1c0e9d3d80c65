package models

type QuestionKind string

const (
	KindShortAnswer    QuestionKind = "short_answer"
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindTrueFalse      QuestionKind = "true_false"
)

var ValidKinds = map[QuestionKind]bool{
	KindShortAnswer:    true,
	KindMultipleChoice: true,
	KindTrueFalse:      true,
}

// ── Request Types ─────────────────────────────────────

type QuizRequest struct {
	Kind  QuestionKind `json:"kind"`
	Count int          `json:"count"`
	// Optional source lookup; when both are empty the provider's
	// default passage is used.
	Section string `json:"section,omitempty"`
	Title   string `json:"title,omitempty"`
}

// QueryRequest is the answer-submission body. By convention the
// question field carries the encoded token for option questions and
// the plain question text for short-answer ones.
type QueryRequest struct {
	Question   string `json:"question"`
	UserAnswer string `json:"user_answer"`
}

// ── Response Types ────────────────────────────────────

// DeliveredQuestion is a question as served to the client. Token is
// everything the server needs back to grade the answer; there is no
// server-side question state.
type DeliveredQuestion struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
	Token   string   `json:"token,omitempty"`
}

type QuizResponse struct {
	Questions []DeliveredQuestion `json:"questions"`
	Total     int                 `json:"total"`
}

type EvaluationResponse struct {
	Explanation string `json:"explanation"`
	Score       int    `json:"score"`
}

type DocumentResponse struct {
	Document string `json:"document"`
	Title    string `json:"title,omitempty"`
	Chapter  string `json:"chapter,omitempty"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type SummaryAndQuestionsResponse struct {
	Summary   string   `json:"summary"`
	Questions []string `json:"questions"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
