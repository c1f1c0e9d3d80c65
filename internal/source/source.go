// Package source fetches the passages that quizzes are generated
// from. The production provider reads them out of a Qdrant collection
// of textbook chunks; the static provider carries a built-in passage
// for development and the terminal mode.
package source

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no record matches the lookup.
var ErrNotFound = errors.New("source: no matching passage")

// Passage is one retrievable chunk of source text with its metadata.
type Passage struct {
	Title   string `json:"title"`
	Chapter string `json:"chapter"`
	Text    string `json:"text"`
}

// Provider returns the first passage whose payload field key matches
// value within the given collection.
type Provider interface {
	Fetch(ctx context.Context, collection, key, value string) (*Passage, error)
}
