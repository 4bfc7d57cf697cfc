// Package news implements market-news article fetchers. A fetcher resolves
// articles for a set of ticker symbols; an empty symbol list requests the
// general market feed.
package news

import (
	"context"

	"github.com/DotHrishi/Stock-Sage/internal/model"
)

type Fetcher interface {
	Fetch(ctx context.Context, symbols []string) ([]model.Article, error)
}

// dedupeByURL drops repeated articles, keeping the first occurrence.
// Symbol-by-symbol company-news lookups often return the same story twice.
func dedupeByURL(articles []model.Article) []model.Article {
	seen := map[string]bool{}
	var out []model.Article
	for _, a := range articles {
		if a.URL != "" && seen[a.URL] {
			continue
		}
		seen[a.URL] = true
		out = append(out, a)
	}
	return out
}
