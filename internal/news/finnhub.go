package news

import (
	"context"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
	"github.com/samber/lo"

	"github.com/DotHrishi/Stock-Sage/internal/model"
)

const companyNewsLookback = 7 * 24 * time.Hour

type FinnhubFetcher struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubFetcher(apiKey string) *FinnhubFetcher {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return &FinnhubFetcher{
		client: finnhub.NewAPIClient(cfg).DefaultApi,
	}
}

// Fetch returns company news for the given symbols from the last week,
// in the order Finnhub reports it. With no symbols it returns the general
// market feed instead.
func (f *FinnhubFetcher) Fetch(ctx context.Context, symbols []string) ([]model.Article, error) {
	if len(symbols) == 0 {
		return f.marketNews(ctx)
	}

	var (
		to   = time.Now().UTC()
		from = to.Add(-companyNewsLookback)
	)

	var articles []model.Article
	for _, symbol := range symbols {
		res, _, err := f.client.CompanyNews(ctx).
			Symbol(symbol).
			From(from.Format("2006-01-02")).
			To(to.Format("2006-01-02")).
			Execute()
		if err != nil {
			return nil, err
		}

		articles = append(articles, lo.Map(res, func(n finnhub.CompanyNews, _ int) model.Article {
			return companyArticle(n)
		})...)
	}

	return dedupeByURL(articles), nil
}

func (f *FinnhubFetcher) marketNews(ctx context.Context) ([]model.Article, error) {
	res, _, err := f.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return nil, err
	}

	return lo.Map(res, func(n finnhub.MarketNews, _ int) model.Article {
		return marketArticle(n)
	}), nil
}

func companyArticle(n finnhub.CompanyNews) model.Article {
	var a model.Article
	if n.Headline != nil {
		a.Headline = *n.Headline
	}
	if n.Summary != nil {
		a.Summary = *n.Summary
	}
	if n.Source != nil {
		a.Source = *n.Source
	}
	if n.Url != nil {
		a.URL = *n.Url
	}
	if n.Datetime != nil {
		a.PublishedAt = time.Unix(*n.Datetime, 0).UTC()
	}
	if n.Related != nil && *n.Related != "" {
		a.Related = strings.Split(*n.Related, ",")
	}
	return a
}

func marketArticle(n finnhub.MarketNews) model.Article {
	var a model.Article
	if n.Headline != nil {
		a.Headline = *n.Headline
	}
	if n.Summary != nil {
		a.Summary = *n.Summary
	}
	if n.Source != nil {
		a.Source = *n.Source
	}
	if n.Url != nil {
		a.URL = *n.Url
	}
	if n.Datetime != nil {
		a.PublishedAt = time.Unix(*n.Datetime, 0).UTC()
	}
	if n.Related != nil && *n.Related != "" {
		a.Related = strings.Split(*n.Related, ",")
	}
	return a
}
