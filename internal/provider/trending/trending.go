// Package trending reads the top gainers and losers of the Indian exchanges
// from the RapidAPI "Indian Stock Exchange" service.
package trending

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hugohenrick/stock-assistant/internal/httpx"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

const (
	DefaultBaseURL = "https://indian-stock-exchange-api2.p.rapidapi.com"
	DefaultHost    = "indian-stock-exchange-api2.p.rapidapi.com"
)

var ErrMissingAPIKey = errors.New("trending: rapidapi key not configured")

// Client calls /trending. Gainers and Losers each issue their own request;
// nothing is cached between calls.
type Client struct {
	http    *httpx.Client
	baseURL string
	apiKey  string
}

// New creates a RapidAPI trending-stocks client.
func New(hc *httpx.Client, baseURL, apiKey, host string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if host == "" {
		host = DefaultHost
	}
	return &Client{
		http: hc.WithHeaders(map[string]string{
			"x-rapidapi-key":  apiKey,
			"x-rapidapi-host": host,
		}),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type trendingResponse struct {
	TrendingStocks struct {
		TopGainers []stock `json:"top_gainers"`
		TopLosers  []stock `json:"top_losers"`
	} `json:"trending_stocks"`
}

type stock struct {
	TickerID      string `json:"ticker_id"`
	CompanyName   string `json:"company_name"`
	Price         number `json:"price"`
	PercentChange number `json:"percent_change"`
	NetChange     number `json:"net_change"`
}

// number accepts both JSON numbers and numeric strings; anything else is
// treated as missing.
type number struct {
	Value float64
	Valid bool
}

func (n *number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), 64)
	if err != nil {
		return nil
	}
	n.Value, n.Valid = v, true
	return nil
}

func (c *Client) Gainers(ctx context.Context) ([]market.Recommendation, error) {
	res, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return toRecommendations(res.TrendingStocks.TopGainers), nil
}

func (c *Client) Losers(ctx context.Context) ([]market.Recommendation, error) {
	res, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return toRecommendations(res.TrendingStocks.TopLosers), nil
}

func (c *Client) fetch(ctx context.Context) (*trendingResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	body, err := c.http.Get(ctx, c.baseURL+"/trending")
	if err != nil {
		return nil, fmt.Errorf("trending: %w", err)
	}

	var res trendingResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("trending: decode: %w", err)
	}
	return &res, nil
}

func toRecommendations(stocks []stock) []market.Recommendation {
	recs := make([]market.Recommendation, 0, len(stocks))
	for _, s := range stocks {
		name := strings.TrimSpace(s.CompanyName)
		if name == "" {
			name = strings.TrimSpace(s.TickerID)
		}
		if name == "" {
			continue
		}
		recs = append(recs, market.Recommendation{Symbol: name, Reason: reason(s)})
	}
	return recs
}

// reason renders e.g. "+4.20% at ₹123.40".
func reason(s stock) string {
	var parts []string
	if s.PercentChange.Valid {
		parts = append(parts, fmt.Sprintf("%+.2f%%", s.PercentChange.Value))
	} else if s.NetChange.Valid {
		parts = append(parts, fmt.Sprintf("%+.2f", s.NetChange.Value))
	}
	if s.Price.Valid {
		parts = append(parts, fmt.Sprintf("at ₹%.2f", s.Price.Value))
	}
	return strings.Join(parts, " ")
}
