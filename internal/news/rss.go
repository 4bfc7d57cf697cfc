package news

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/SlyMarbo/rss"
	readability "github.com/go-shiori/go-readability"
	"github.com/samber/lo"

	"github.com/DotHrishi/Stock-Sage/internal/model"
)

// contextTransport injects a context into every outgoing request so that
// context cancellation and deadlines propagate through the rss library.
type contextTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}

// FeedFetcher serves general market headlines from an RSS feed. It is the
// article source when no Finnhub API key is configured. The feed carries no
// per-symbol news, so the symbols argument is ignored and every fetch
// behaves like a general-feed request.
type FeedFetcher struct {
	FeedURL    string
	SourceName string
}

func NewFeedFetcher(feedURL string) *FeedFetcher {
	return &FeedFetcher{
		FeedURL:    feedURL,
		SourceName: "rss",
	}
}

func (f *FeedFetcher) Fetch(ctx context.Context, _ []string) ([]model.Article, error) {
	feed, err := f.loadFeed(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(feed.Items, func(item *rss.Item, _ int) model.Article {
		return model.Article{
			Headline:    item.Title,
			Summary:     itemText(item),
			Source:      f.SourceName,
			URL:         item.Link,
			PublishedAt: item.Date.UTC(),
		}
	}), nil
}

func (f *FeedFetcher) loadFeed(ctx context.Context) (*rss.Feed, error) {
	client := &http.Client{
		Transport: contextTransport{ctx: ctx, base: http.DefaultTransport},
		Timeout:   30 * time.Second,
	}
	return rss.FetchByClient(f.FeedURL, client)
}

var redundantNewLines = regexp.MustCompile(`\n{3,}`)

// itemText returns the richest available text for an item. Content (full
// body) is preferred over Summary (short excerpt). Feed bodies arrive as
// HTML; readability strips them down to plain text for the AI prompt.
func itemText(item *rss.Item) string {
	raw := strings.TrimSpace(item.Content)
	if raw == "" {
		raw = strings.TrimSpace(item.Summary)
	}
	if raw == "" {
		return ""
	}

	doc, err := readability.FromReader(strings.NewReader(raw), nil)
	if err != nil {
		return raw
	}

	return cleanupText(doc.TextContent)
}

func cleanupText(text string) string {
	return strings.TrimSpace(redundantNewLines.ReplaceAllString(text, "\n"))
}
