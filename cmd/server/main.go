package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/tutor-ai/backend/internal/config"
	"github.com/tutor-ai/backend/internal/quiz"
	"github.com/tutor-ai/backend/internal/source"
	"github.com/tutor-ai/backend/internal/tutor"
)

func main() {
	cfg := config.Load()

	// Text-generation client
	var llm tutor.LLMClient
	if cfg.MockGenerator {
		llm = tutor.NewMockClient()
		log.Println("Tutor using mock generator")
	} else {
		llm = tutor.NewAPIClient(cfg.AnthropicModel, cfg.AnthropicAPIKey, cfg.Temperature)
		log.Println("Tutor using Anthropic API:", cfg.AnthropicModel)
	}

	// Source-text provider
	var provider source.Provider
	if cfg.QdrantHost != "" {
		qp, err := source.NewQdrantProvider(cfg.QdrantHost, cfg.QdrantPort, cfg.QdrantAPIKey, cfg.QdrantUseTLS)
		if err != nil {
			log.Fatalf("Failed to connect to Qdrant: %v", err)
		}
		defer qp.Close()
		provider = qp
		log.Printf("Source text from Qdrant collection %q at %s", cfg.QdrantCollection, cfg.QdrantHost)
	} else {
		provider = source.NewStaticProvider()
		log.Println("Source text from bundled passage")
	}

	service := quiz.NewService(tutor.New(llm, cfg.Topic), provider, cfg.QdrantCollection)
	handler := quiz.NewHandler(service)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/document", handler.GetDocument).Methods("GET")
	api.HandleFunc("/summary", handler.GetSummary).Methods("GET")
	api.HandleFunc("/summary-and-questions", handler.GetSummaryAndQuestions).Methods("GET")
	api.HandleFunc("/quiz", handler.GenerateQuiz).Methods("POST")
	api.HandleFunc("/query", handler.Query).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	log.Printf("Server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(r)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
