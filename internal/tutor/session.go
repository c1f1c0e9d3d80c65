package tutor

// Outcome classifies a finished quiz run.
type Outcome string

const (
	OutcomeFail           Outcome = "fail"
	OutcomePassWithReview Outcome = "pass_with_review"
	OutcomePass           Outcome = "pass"
)

// SessionScorer accumulates per-question scores across one quiz run
// and classifies the total against two accuracy thresholds. It is
// local to a single run and not safe for concurrent use.
type SessionScorer struct {
	Count               int
	RequiredAccuracy    float64
	RecommendedAccuracy float64

	total int
}

func NewSessionScorer(count int, required, recommended float64) *SessionScorer {
	return &SessionScorer{
		Count:               count,
		RequiredAccuracy:    required,
		RecommendedAccuracy: recommended,
	}
}

func (s *SessionScorer) Record(score int) {
	s.total += score
}

func (s *SessionScorer) Total() int {
	return s.total
}

// MaxScore is the highest attainable total: 10 points per question.
func (s *SessionScorer) MaxScore() int {
	return 10 * s.Count
}

// Outcome applies the thresholds: below required accuracy is a fail,
// below recommended is a pass that warrants review, the rest pass.
func (s *SessionScorer) Outcome() Outcome {
	max := float64(s.MaxScore())
	total := float64(s.total)
	switch {
	case total < s.RequiredAccuracy*max:
		return OutcomeFail
	case total < s.RecommendedAccuracy*max:
		return OutcomePassWithReview
	default:
		return OutcomePass
	}
}
