// Package feed acquires raw signals from public agro-news sources:
// RSS feeds first, HTML listing pages as a fallback when every feed
// comes back empty.
package feed

import "strings"

// Item is one headline extracted from a feed or listing page.
type Item struct {
	Title string
	Link  string
}

// FallbackPage pairs an HTML listing URL with the CSS selector of its
// headline anchors.
type FallbackPage struct {
	URL      string
	Selector string
}

// DefaultFallbacks are scraped only when the RSS pass yields nothing.
var DefaultFallbacks = []FallbackPage{
	{
		URL:      "https://www.gov.br/agricultura/pt-br/assuntos/noticias",
		Selector: "a[href*='/assuntos/noticias/']",
	},
	{
		URL:      "https://www.embrapa.br/busca-de-noticias",
		Selector: "a.nome-noticia, a.card-title, h3 a",
	},
}

// normalize collapses runs of whitespace and trims the result.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
