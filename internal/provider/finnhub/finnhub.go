// Package finnhub reads general market news through the Finnhub SDK.
package finnhub

import (
	"context"
	"errors"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

var ErrMissingAPIKey = errors.New("finnhub: api key not configured")

type Client struct {
	client *finnhub.DefaultApiService
	apiKey string
	limit  int
}

// New creates a FinnHub news client for the general market category.
func New(apiKey string) *Client {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &Client{client: client, apiKey: apiKey, limit: 20}
}

func (c *Client) Name() string {
	return "FinnHub"
}

func (c *Client) Fetch(ctx context.Context) ([]market.NewsItem, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	res, _, err := c.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub: market news: %w", err)
	}

	items := make([]market.NewsItem, 0, len(res))
	for _, news := range res {
		item, ok := toNewsItem(news)
		if !ok {
			continue
		}
		items = append(items, item)
		if len(items) == c.limit {
			break
		}
	}
	return items, nil
}

// toNewsItem drops entries without a headline.
func toNewsItem(news finnhub.MarketNews) (market.NewsItem, bool) {
	var item market.NewsItem

	if news.Headline == nil || *news.Headline == "" {
		return item, false
	}
	item.Title = *news.Headline

	if news.Summary != nil {
		item.Description = *news.Summary
	}
	if news.Url != nil {
		item.URL = *news.Url
	}
	if news.Source != nil {
		item.Source = *news.Source
	}
	if news.Datetime != nil {
		item.PublishedAt = time.Unix(*news.Datetime, 0).UTC()
	}
	return item, true
}
