package feed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

const (
	userAgent    = "Mozilla/5.0 (Horizonte; +https://example.org)"
	acceptHeader = "application/rss+xml,application/xml,text/xml;q=0.9,*/*;q=0.8"
)

// Fetcher pulls headlines from RSS feeds over a shared HTTP client.
type Fetcher struct {
	client *http.Client
	parser *gofeed.Parser
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		parser: gofeed.NewParser(),
	}
}

// FetchAll walks the feed list in order and collects up to maxItems
// headlines, deduplicated by link. A feed that fails or parses empty is
// logged and skipped; acquisition is best-effort by design.
func (f *Fetcher) FetchAll(ctx context.Context, feeds []string, maxItems int) []Item {
	var items []Item
	seen := make(map[string]bool)
	for _, url := range feeds {
		fetched, err := f.fetchOne(ctx, url)
		if err != nil {
			slog.WarnContext(ctx, "feed fetch failed", "url", url, "error", err)
			continue
		}
		for _, it := range fetched {
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

func (f *Fetcher) fetchOne(ctx context.Context, url string) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	parsed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		title := normalize(entry.Title)
		if title == "" || entry.Link == "" {
			continue
		}
		items = append(items, Item{Title: title, Link: entry.Link})
	}
	return items, nil
}
