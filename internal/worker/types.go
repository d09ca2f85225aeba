package worker

import (
	"context"
	"time"

	"horizonte/backend/internal/feed"
	"horizonte/backend/internal/tagging"
)

type SignalDTO struct {
	Title       string
	Source      string
	CollectedAt time.Time
	Concepts    []string
}

type FeedSource interface {
	FetchAll(ctx context.Context, feeds []string, maxItems int) []feed.Item
	ScrapeList(ctx context.Context, pageURL, selector string) ([]feed.Item, error)
}

type SignalStore interface {
	ReplaceAll(ctx context.Context, signals []SignalDTO) error
}

type ConceptLister interface {
	ListConcepts(ctx context.Context) ([]tagging.Concept, error)
}
