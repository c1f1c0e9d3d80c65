package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. There are no other
// process-wide settings; every component receives what it needs from
// here explicitly.
type Config struct {
	Port string

	// Text-generation service.
	AnthropicModel  string
	AnthropicAPIKey string
	Temperature     float64
	MockGenerator   bool

	// Tutoring parameters.
	Topic               string
	RequiredAccuracy    float64
	RecommendedAccuracy float64

	// Source-text provider. An empty host means the bundled static
	// passage is used instead of Qdrant.
	QdrantHost       string
	QdrantPort       int
	QdrantAPIKey     string
	QdrantUseTLS     bool
	QdrantCollection string

	// AllowedOrigins controls CORS. Empty means allow all (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with defaults.
// A .env file is loaded if present but is optional.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:                getEnv("PORT", "8080"),
		AnthropicModel:      getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		AnthropicAPIKey:     getEnv("ANTHROPIC_API_KEY", ""),
		Temperature:         getEnvFloat("GENERATION_TEMPERATURE", 0.5),
		MockGenerator:       getEnv("MOCK_GENERATOR", "") == "true",
		Topic:               getEnv("TUTOR_TOPIC", "psychology"),
		RequiredAccuracy:    getEnvFloat("REQUIRED_ACCURACY", 0.6),
		RecommendedAccuracy: getEnvFloat("RECOMMENDED_ACCURACY", 0.85),
		QdrantHost:          getEnv("QDRANT_HOST", ""),
		QdrantPort:          getEnvInt("QDRANT_PORT", 6334),
		QdrantAPIKey:        getEnv("QDRANT_API_KEY", ""),
		QdrantUseTLS:        getEnv("QDRANT_USE_TLS", "") == "true",
		QdrantCollection:    getEnv("QDRANT_COLLECTION", "textbook"),
		AllowedOrigins:      parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// parseOrigins splits a comma-separated origins string into a trimmed
// slice. Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
