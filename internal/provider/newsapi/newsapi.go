// Package newsapi reads business headlines from newsapi.org.
package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hugohenrick/stock-assistant/internal/httpx"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

const DefaultBaseURL = "https://newsapi.org"

var ErrMissingAPIKey = errors.New("newsapi: api key not configured")

type Client struct {
	http     *httpx.Client
	baseURL  string
	apiKey   string
	country  string
	category string
	pageSize int
}

// New creates a NewsAPI top-headlines client.
func New(hc *httpx.Client, baseURL, apiKey, country, category string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:     hc.WithHeaders(map[string]string{"X-Api-Key": apiKey}),
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		country:  country,
		category: category,
		pageSize: 20,
	}
}

type headlinesResponse struct {
	Status   string    `json:"status"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	Articles []article `json:"articles"`
}

type article struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

func (c *Client) Name() string {
	return "NewsAPI"
}

// Fetch returns the current top headlines in the order NewsAPI ranks them.
func (c *Client) Fetch(ctx context.Context) ([]market.NewsItem, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	q := url.Values{}
	if c.country != "" {
		q.Set("country", c.country)
	}
	if c.category != "" {
		q.Set("category", c.category)
	}
	q.Set("pageSize", fmt.Sprint(c.pageSize))

	body, err := c.http.Get(ctx, c.baseURL+"/v2/top-headlines?"+q.Encode())
	if err != nil {
		var res headlinesResponse
		if json.Unmarshal(body, &res) == nil && res.Message != "" {
			return nil, fmt.Errorf("newsapi: %s: %s", res.Code, res.Message)
		}
		return nil, fmt.Errorf("newsapi: %w", err)
	}

	var res headlinesResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("newsapi: decode: %w", err)
	}
	if res.Status != "ok" {
		return nil, fmt.Errorf("newsapi: %s: %s", res.Code, res.Message)
	}

	items := make([]market.NewsItem, 0, len(res.Articles))
	for _, a := range res.Articles {
		if a.Title == "" || a.Title == "[Removed]" {
			continue
		}
		item := market.NewsItem{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      a.Source.Name,
		}
		if t, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
			item.PublishedAt = t
		}
		items = append(items, item)
	}
	return items, nil
}
