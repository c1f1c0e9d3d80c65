package quiz

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tutor-ai/backend/internal/models"
	"github.com/tutor-ai/backend/internal/source"
	"github.com/tutor-ai/backend/internal/tutor"
)

// Service wires the tutoring engine to the source-text provider. It
// keeps no state between requests: a generated question leaves as an
// encoded token and comes back the same way.
type Service struct {
	tutor      *tutor.Tutor
	source     source.Provider
	collection string
}

func NewService(t *tutor.Tutor, src source.Provider, collection string) *Service {
	return &Service{tutor: t, source: src, collection: collection}
}

// Document resolves the source passage for a request. A failed lookup
// degrades to the missing-text sentinel so every downstream consumer
// has a non-empty string to work with.
func (s *Service) Document(ctx context.Context, section, title string) *source.Passage {
	key, value := "section", section
	if title != "" {
		key, value = "title", title
	}

	passage, err := s.source.Fetch(ctx, s.collection, key, value)
	if err != nil {
		log.Printf("WARNING: source lookup %s=%q failed: %v", key, value, err)
		return &source.Passage{Text: tutor.MissingText}
	}
	return passage
}

func (s *Service) Summary(ctx context.Context, section, title string) (string, error) {
	return s.tutor.Summarize(ctx, s.Document(ctx, section, title).Text)
}

// SummaryAndQuestions reproduces the combined endpoint: summarize the
// passage, then generate short-answer questions from the summary.
func (s *Service) SummaryAndQuestions(ctx context.Context, count int) (string, []string, error) {
	summary, err := s.Summary(ctx, "", "")
	if err != nil {
		return "", nil, err
	}

	questions, err := s.tutor.ShortAnswerQuestions(ctx, summary, count)
	if err != nil {
		return "", nil, err
	}

	prompts := make([]string, len(questions))
	for i, q := range questions {
		prompts[i] = q.Prompt
	}
	return summary, prompts, nil
}

// GenerateQuiz produces count questions of the requested kind. Option
// questions carry their encoded token; short-answer questions carry
// only the prompt and are graded against the source text later.
// Malformed generations may yield fewer questions than requested.
func (s *Service) GenerateQuiz(ctx context.Context, req models.QuizRequest) ([]models.DeliveredQuestion, error) {
	text := s.Document(ctx, req.Section, req.Title).Text

	var (
		questions []tutor.Question
		err       error
	)
	switch req.Kind {
	case models.KindShortAnswer:
		questions, err = s.tutor.ShortAnswerQuestions(ctx, text, req.Count)
	case models.KindMultipleChoice:
		questions, err = s.tutor.MultipleChoiceQuestions(ctx, text, req.Count)
	case models.KindTrueFalse:
		questions, err = s.tutor.TrueFalseQuestions(ctx, text, req.Count)
	default:
		return nil, fmt.Errorf("unknown question kind %q", req.Kind)
	}
	if err != nil {
		return nil, err
	}

	delivered := make([]models.DeliveredQuestion, len(questions))
	for i, q := range questions {
		delivered[i] = models.DeliveredQuestion{Prompt: q.Prompt}
		if q.Kind != tutor.KindShortAnswer {
			delivered[i].Options = q.Options
			delivered[i].Token = tutor.EncodeToken(q)
		}
	}
	return delivered, nil
}

// Evaluate grades a submission. A question field containing the token
// delimiter is an encoded option question; anything else is treated as
// short-answer text and graded against the default passage.
func (s *Service) Evaluate(ctx context.Context, req models.QueryRequest) (models.EvaluationResponse, error) {
	if strings.Contains(req.Question, tutor.TokenDelimiter) {
		result, err := s.tutor.EvaluateChoice(ctx, req.Question, req.UserAnswer)
		if err != nil {
			return models.EvaluationResponse{}, err
		}
		return models.EvaluationResponse{Explanation: result.Explanation, Score: result.Score}, nil
	}

	text := s.Document(ctx, "", "").Text
	result := s.tutor.EvaluateShortAnswer(ctx, text, req.Question, req.UserAnswer)
	return models.EvaluationResponse{Explanation: result.Explanation, Score: result.Score}, nil
}
