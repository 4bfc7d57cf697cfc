// Package digest implements the daily news-digest pipeline. One run loads
// the subscribed users, resolves watchlist news for each, asks the AI for a
// per-user summary, and dispatches the digest emails. Every per-subscriber
// stage is isolated: a single subscriber failing never aborts the run for
// the others. Only the initial subscriber listing can fail the run itself.
package digest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/DotHrishi/Stock-Sage/internal/model"
	"github.com/DotHrishi/Stock-Sage/internal/summary"
)

// maxArticlesPerUser caps how many articles feed one subscriber's prompt.
const maxArticlesPerUser = 6

type SubscriberProvider interface {
	AllForNewsEmail(ctx context.Context) ([]model.Subscriber, error)
}

type WatchlistProvider interface {
	SymbolsByEmail(ctx context.Context, email string) ([]string, error)
}

type ArticleFetcher interface {
	Fetch(ctx context.Context, symbols []string) ([]model.Article, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

type Dispatcher interface {
	SendNewsSummary(ctx context.Context, to, date, newsContent string) error
}

type Pipeline struct {
	subscribers SubscriberProvider
	watchlists  WatchlistProvider
	fetcher     ArticleFetcher
	summarizer  Summarizer
	dispatcher  Dispatcher

	now func() time.Time
}

func New(
	subscribers SubscriberProvider,
	watchlists WatchlistProvider,
	fetcher ArticleFetcher,
	summarizer Summarizer,
	dispatcher Dispatcher,
) *Pipeline {
	return &Pipeline{
		subscribers: subscribers,
		watchlists:  watchlists,
		fetcher:     fetcher,
		summarizer:  summarizer,
		dispatcher:  dispatcher,
		now:         time.Now,
	}
}

// Run executes one digest invocation. It returns an error only when the
// subscriber listing itself fails; everything past that point degrades to
// skipped subscribers and is reflected in the counts.
func (p *Pipeline) Run(ctx context.Context) (model.DigestRunResult, error) {
	subscribers, err := p.subscribers.AllForNewsEmail(ctx)
	if err != nil {
		return model.DigestRunResult{}, fmt.Errorf("list subscribers: %w", err)
	}

	if len(subscribers) == 0 {
		log.Printf("[INFO] no subscribers for news email, nothing to do")
		return model.DigestRunResult{}, nil
	}

	log.Printf("[INFO] starting news digest for %d subscribers", len(subscribers))

	batches := p.fetchAll(ctx, subscribers)
	summaries := p.summarizeAll(ctx, batches)
	sent := p.dispatchAll(ctx, summaries)

	log.Printf("[INFO] news digest complete: sent %d of %d emails", sent, len(subscribers))

	return model.DigestRunResult{
		TotalSubscribers: len(subscribers),
		EmailsSent:       sent,
	}, nil
}

// fetchAll resolves articles per subscriber sequentially, keeping external
// API rate-limit usage predictable. A failed subscriber still appears in the
// output with an empty article list.
func (p *Pipeline) fetchAll(ctx context.Context, subscribers []model.Subscriber) []model.UserNewsBatch {
	batches := make([]model.UserNewsBatch, 0, len(subscribers))

	for _, sub := range subscribers {
		articles, err := p.fetchForSubscriber(ctx, sub)
		if err != nil {
			log.Printf("[ERROR] failed to prepare news for %s: %v", sub.Email, err)
			articles = []model.Article{}
		}
		batches = append(batches, model.UserNewsBatch{Subscriber: sub, Articles: articles})
	}

	return batches
}

func (p *Pipeline) fetchForSubscriber(ctx context.Context, sub model.Subscriber) ([]model.Article, error) {
	symbols, err := p.watchlists.SymbolsByEmail(ctx, sub.Email)
	if err != nil {
		return nil, fmt.Errorf("watchlist lookup: %w", err)
	}

	articles, err := p.fetcher.Fetch(ctx, symbols)
	if err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}
	articles = truncate(articles)

	// Watchlist turned up nothing: fall back to the general feed once so the
	// subscriber still gets a market overview.
	if len(articles) == 0 {
		articles, err = p.fetcher.Fetch(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("fetch fallback articles: %w", err)
		}
		articles = truncate(articles)
	}

	return articles, nil
}

func truncate(articles []model.Article) []model.Article {
	if len(articles) > maxArticlesPerUser {
		return articles[:maxArticlesPerUser]
	}
	return articles
}

// summarizeAll queries the model per subscriber, again sequentially with
// isolated failures. An empty article batch is still sent to the model so
// that subscribers with no watchlist matches get a general note rather than
// silence.
func (p *Pipeline) summarizeAll(ctx context.Context, batches []model.UserNewsBatch) []model.UserSummaryResult {
	results := make([]model.UserSummaryResult, 0, len(batches))

	for _, batch := range batches {
		content, err := p.summarizeBatch(ctx, batch)
		if err != nil {
			log.Printf("[ERROR] failed to summarize news for %s: %v", batch.Subscriber.Email, err)
			results = append(results, model.UserSummaryResult{Subscriber: batch.Subscriber})
			continue
		}

		results = append(results, model.UserSummaryResult{
			Subscriber:  batch.Subscriber,
			NewsContent: &content,
		})
	}

	return results
}

func (p *Pipeline) summarizeBatch(ctx context.Context, batch model.UserNewsBatch) (string, error) {
	prompt, err := summary.NewsSummaryPrompt(batch.Articles)
	if err != nil {
		return "", err
	}

	text, err := p.summarizer.Summarize(ctx, prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("model returned no text")
	}

	return text, nil
}

// dispatchAll sends the digest emails concurrently; the sends are
// independent, so there is no ordering between subscribers. Subscribers
// without news content are skipped and counted as not sent, as are
// transport failures.
func (p *Pipeline) dispatchAll(ctx context.Context, results []model.UserSummaryResult) int {
	date := formattedDate(p.now())

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		sent int
	)

	for _, res := range results {
		if res.NewsContent == nil {
			log.Printf("[INFO] no news content for %s, skipping email", res.Subscriber.Email)
			continue
		}

		wg.Add(1)
		go func(res model.UserSummaryResult) {
			defer wg.Done()

			if err := p.dispatcher.SendNewsSummary(ctx, res.Subscriber.Email, date, *res.NewsContent); err != nil {
				log.Printf("[ERROR] failed to send news email to %s: %v", res.Subscriber.Email, err)
				return
			}

			mu.Lock()
			sent++
			mu.Unlock()
		}(res)
	}
	wg.Wait()

	return sent
}

func formattedDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
