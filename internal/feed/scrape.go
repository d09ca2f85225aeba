package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// scrapeLimit caps how many anchors a single listing page contributes.
const scrapeLimit = 25

// ScrapeList extracts headline links from an HTML listing page using a
// CSS selector. Only absolute http(s) links with a non-empty text are
// kept.
func (f *Fetcher) ScrapeList(ctx context.Context, pageURL, selector string) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	var items []Item
	doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := normalize(sel.Text())
		href, _ := sel.Attr("href")
		if title != "" && strings.HasPrefix(href, "http") {
			items = append(items, Item{Title: title, Link: href})
		}
		return len(items) < scrapeLimit
	})
	return items, nil
}
