package engine

import (
	"fmt"
	"time"

	"github.com/umputun/newsnet/pkg/domain"
	"github.com/umputun/newsnet/pkg/normalize"
)

// Dedupe keeps the first article for each link, preserving order
func Dedupe(articles []domain.Article) []domain.Article {
	seen := make(map[string]bool, len(articles))
	res := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if seen[a.Link] {
			continue
		}
		seen[a.Link] = true
		res = append(res, a)
	}
	return res
}

// placeholder notices shown when live collection yields too little
var placeholderSet = []struct {
	title, summary string
}{
	{
		title:   "Live news feeds are temporarily unavailable",
		summary: "None of the fetch backends returned enough articles. The collection is retried automatically.",
	},
	{
		title:   "Showing limited content until the next refresh",
		summary: "Articles will appear here as soon as the next collection cycle succeeds.",
	},
	{
		title:   "Check network access to feed backends",
		summary: "Feeds are fetched through conversion proxies or directly, a blocked or offline network prevents collection.",
	},
}

// Placeholders returns the fixed set of placeholder articles with fresh ids
func Placeholders(ids *normalize.IDSource, now time.Time) []domain.Article {
	res := make([]domain.Article, 0, len(placeholderSet))
	for i, p := range placeholderSet {
		res = append(res, domain.Article{
			ID:          ids.Next(),
			Title:       p.title,
			Link:        fmt.Sprintf("placeholder://newsnet/notice-%d", i+1),
			Published:   now,
			Source:      "newsnet",
			Summary:     p.summary,
			Keywords:    []string{},
			Category:    "System",
			Language:    "en",
			Placeholder: true,
		})
	}
	return res
}
