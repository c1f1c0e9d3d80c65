package quiz

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tutor-ai/backend/internal/models"
	"github.com/tutor-ai/backend/internal/tutor"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	passage := h.service.Document(r.Context(), query.Get("section"), query.Get("title"))

	writeJSON(w, http.StatusOK, models.DocumentResponse{
		Document: passage.Text,
		Title:    passage.Title,
		Chapter:  passage.Chapter,
	})
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	summary, err := h.service.Summary(r.Context(), query.Get("section"), query.Get("title"))
	if err != nil {
		log.Printf("[handler] GetSummary error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Summarization failed"})
		return
	}

	writeJSON(w, http.StatusOK, models.SummaryResponse{Summary: summary})
}

func (h *Handler) GetSummaryAndQuestions(w http.ResponseWriter, r *http.Request) {
	count := intQueryParam(r.URL.Query(), "count", 5)

	summary, questions, err := h.service.SummaryAndQuestions(r.Context(), count)
	if err != nil {
		log.Printf("[handler] GetSummaryAndQuestions error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Generation failed"})
		return
	}

	writeJSON(w, http.StatusOK, models.SummaryAndQuestionsResponse{
		Summary:   summary,
		Questions: questions,
	})
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if !models.ValidKinds[req.Kind] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "kind must be 'short_answer', 'multiple_choice', or 'true_false'"})
		return
	}

	if req.Count <= 0 {
		req.Count = 5
	}

	questions, err := h.service.GenerateQuiz(r.Context(), req)
	if err != nil {
		log.Printf("[handler] GenerateQuiz error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Generation failed"})
		return
	}

	writeJSON(w, http.StatusOK, models.QuizResponse{
		Questions: questions,
		Total:     len(questions),
	})
}

func (h *Handler) Query(w http.ResponseWriter, r *http.Request) {
	var req models.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Question == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question is required"})
		return
	}

	resp, err := h.service.Evaluate(r.Context(), req)
	if err != nil {
		if errors.Is(err, tutor.ErrBadToken) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Malformed question token"})
			return
		}
		log.Printf("[handler] Query error: %v", err)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Evaluation failed: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func intQueryParam(query url.Values, key string, defaultVal int) int {
	s := query.Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return defaultVal
	}
	return v
}
