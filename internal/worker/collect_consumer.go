package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nsqio/go-nsq"

	"horizonte/backend/features/job"
	"horizonte/backend/internal/feed"
	"horizonte/backend/internal/middleware"
	"horizonte/backend/internal/tagging"
)

// CollectConsumer handles collection tasks: it pulls headlines from the
// configured RSS feeds, falls back to listing-page scraping when every feed
// comes back empty, tags each headline against the concept ontology and
// replaces the current signal batch in storage.
type CollectConsumer struct {
	source    FeedSource
	store     SignalStore
	concepts  ConceptLister
	jobRepo   job.Repository
	feeds     []string
	fallbacks []feed.FallbackPage
	maxItems  int
}

func NewCollectConsumer(source FeedSource, store SignalStore, concepts ConceptLister, jobRepo job.Repository, feeds []string, fallbacks []feed.FallbackPage, maxItems int) *CollectConsumer {
	return &CollectConsumer{
		source:    source,
		store:     store,
		concepts:  concepts,
		jobRepo:   jobRepo,
		feeds:     feeds,
		fallbacks: fallbacks,
		maxItems:  maxItems,
	}
}

func (h *CollectConsumer) HandleMessage(m *nsq.Message) error {
	if len(m.Body) == 0 {
		return nil
	}

	var payload CollectTaskPayload
	if err := json.Unmarshal(m.Body, &payload); err != nil {
		// Poison Pill: Invalid JSON, don't retry
		slog.Error("poison pill: invalid json", "error", err)
		return nil
	}

	correlationID := payload.CorrelationID
	if correlationID == "" {
		correlationID = uuid.New().String()
	}

	ctx := context.Background()
	ctx = middleware.WithCorrelationID(ctx, correlationID)

	maxItems := h.maxItems
	if payload.MaxItems > 0 {
		maxItems = payload.MaxItems
	}

	items := h.source.FetchAll(ctx, h.feeds, maxItems)

	if len(items) == 0 {
		slog.WarnContext(ctx, "all feeds empty, scraping fallback pages", "pages", len(h.fallbacks))
		items = h.scrapeFallbacks(ctx, maxItems)
	}

	if len(items) == 0 {
		slog.ErrorContext(ctx, "collection produced no signals")
		failedJob := &job.Job{
			Handler: "collector",
			Payload: m.Body,
			Error:   "no signals collected from feeds or fallback pages",
		}
		if err := h.jobRepo.Save(ctx, failedJob); err != nil {
			slog.ErrorContext(ctx, "failed to save failed job", "error", err)
		}
		return nil
	}

	concepts, err := h.concepts.ListConcepts(ctx)
	if err != nil {
		// Tagging is best effort; an empty ontology just yields untagged signals.
		slog.WarnContext(ctx, "failed to load concepts, signals will be untagged", "error", err)
		concepts = nil
	}

	now := time.Now().UTC()
	signals := make([]SignalDTO, 0, len(items))
	for _, it := range items {
		signals = append(signals, SignalDTO{
			Title:       it.Title,
			Source:      it.Link,
			CollectedAt: now,
			Concepts:    tagging.Tag(it.Title, concepts),
		})
	}

	if err := h.store.ReplaceAll(ctx, signals); err != nil {
		slog.ErrorContext(ctx, "failed to replace signal batch", "error", err)
		return err // Retry
	}

	slog.InfoContext(ctx, "signal batch replaced", "count", len(signals))
	return nil
}

func (h *CollectConsumer) scrapeFallbacks(ctx context.Context, maxItems int) []feed.Item {
	var items []feed.Item
	seen := make(map[string]bool)

	for _, page := range h.fallbacks {
		scraped, err := h.source.ScrapeList(ctx, page.URL, page.Selector)
		if err != nil {
			slog.WarnContext(ctx, "fallback scrape failed", "url", page.URL, "error", err)
			continue
		}
		for _, it := range scraped {
			if seen[it.Link] {
				continue
			}
			seen[it.Link] = true
			items = append(items, it)
			if len(items) >= maxItems {
				return items
			}
		}
	}
	return items
}
