package source

import (
	"context"
	"fmt"

	"github.com/qdrant/go-client/qdrant"
)

// QdrantProvider looks passages up in a Qdrant collection whose
// points carry title/chapter/text payload fields, one chunk per
// textbook subchapter.
type QdrantProvider struct {
	client *qdrant.Client
}

func NewQdrantProvider(host string, port int, apiKey string, useTLS bool) (*QdrantProvider, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant connect: %w", err)
	}
	return &QdrantProvider{client: client}, nil
}

// Fetch scrolls the collection with a payload match filter and
// returns the first hit. The scroll is capped at one point; ordering
// beyond that is whatever Qdrant returns first.
func (p *QdrantProvider) Fetch(ctx context.Context, collection, key, value string) (*Passage, error) {
	points, err := p.client.Scroll(ctx, &qdrant.ScrollPoints{
		CollectionName: collection,
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch(key, value),
			},
		},
		Limit:       qdrant.PtrOf(uint32(1)),
		WithPayload: qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant scroll %s/%s=%s: %w", collection, key, value, err)
	}
	if len(points) == 0 {
		return nil, ErrNotFound
	}

	payload := points[0].Payload
	return &Passage{
		Title:   payload["title"].GetStringValue(),
		Chapter: payload["chapter"].GetStringValue(),
		Text:    payload["text"].GetStringValue(),
	}, nil
}

func (p *QdrantProvider) Close() error {
	return p.client.Close()
}
