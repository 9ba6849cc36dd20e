// Package yahoo implements market.ChartProvider on the Yahoo Finance v8
// chart endpoint.
package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hugohenrick/stock-assistant/internal/httpx"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client fetches price history and quotes. Bare symbols (no exchange suffix)
// get Suffix appended, so "TCS" is looked up as "TCS.NS".
type Client struct {
	http    *httpx.Client
	baseURL string
	suffix  string
}

// New creates a Yahoo chart client; suffix is appended to bare tickers (".NS").
func New(hc *httpx.Client, baseURL, suffix string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: hc, baseURL: strings.TrimRight(baseURL, "/"), suffix: suffix}
}

// range and interval per period
var periodParams = map[market.Period][2]string{
	market.PeriodDay:         {"1d", "5m"},
	market.PeriodWeek:        {"5d", "30m"},
	market.PeriodMonth:       {"1mo", "1d"},
	market.PeriodThreeMonths: {"3mo", "1d"},
	market.PeriodSixMonths:   {"6mo", "1d"},
	market.PeriodYear:        {"1y", "1d"},
}

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type chartResult struct {
	Meta struct {
		Currency           string  `json:"currency"`
		Symbol             string  `json:"symbol"`
		RegularMarketPrice float64 `json:"regularMarketPrice"`
		ChartPreviousClose float64 `json:"chartPreviousClose"`
		PreviousClose      float64 `json:"previousClose"`
		RegularMarketTime  int64   `json:"regularMarketTime"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*int64   `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

// Symbol normalises a user-typed ticker into the form Yahoo expects.
func (c *Client) Symbol(symbol string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" || c.suffix == "" || strings.ContainsAny(symbol, ".^=") {
		return symbol
	}
	return symbol + c.suffix
}

// History returns the candles for symbol over period. Candles with a missing
// close are skipped.
func (c *Client) History(ctx context.Context, symbol string, period market.Period) (*market.Series, error) {
	params, ok := periodParams[period]
	if !ok {
		return nil, fmt.Errorf("%w: %q", market.ErrInvalidPeriod, period)
	}

	res, err := c.chart(ctx, symbol, params[0], params[1])
	if err != nil {
		return nil, err
	}

	series := &market.Series{
		Symbol:   res.Meta.Symbol,
		Period:   period,
		Currency: res.Meta.Currency,
	}
	if len(res.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%w: %s", market.ErrSymbolNotFound, symbol)
	}
	q := res.Indicators.Quote[0]
	for i, ts := range res.Timestamp {
		closeVal := at(q.Close, i)
		if closeVal == nil {
			continue
		}
		p := market.PricePoint{
			Time:  time.Unix(ts, 0).UTC(),
			Close: *closeVal,
		}
		if v := at(q.Open, i); v != nil {
			p.Open = *v
		}
		if v := at(q.High, i); v != nil {
			p.High = *v
		}
		if v := at(q.Low, i); v != nil {
			p.Low = *v
		}
		if i < len(q.Volume) && q.Volume[i] != nil {
			p.Volume = *q.Volume[i]
		}
		series.Points = append(series.Points, p)
	}

	if series.Empty() {
		return nil, fmt.Errorf("%w: %s", market.ErrSymbolNotFound, symbol)
	}
	return series, nil
}

// Quote returns the latest price from the intraday chart meta.
func (c *Client) Quote(ctx context.Context, symbol string) (*market.Quote, error) {
	res, err := c.chart(ctx, symbol, "1d", "1d")
	if err != nil {
		return nil, err
	}

	prev := res.Meta.ChartPreviousClose
	if prev == 0 {
		prev = res.Meta.PreviousClose
	}
	q := &market.Quote{
		Symbol:        res.Meta.Symbol,
		Price:         res.Meta.RegularMarketPrice,
		PreviousClose: prev,
		Currency:      res.Meta.Currency,
	}
	if res.Meta.RegularMarketTime > 0 {
		q.Time = time.Unix(res.Meta.RegularMarketTime, 0).UTC()
	}
	if prev != 0 {
		q.Change = q.Price - prev
		q.ChangePercent = q.Change / prev * 100
	}
	return q, nil
}

func (c *Client) chart(ctx context.Context, symbol, rng, interval string) (*chartResult, error) {
	sym := c.Symbol(symbol)
	if sym == "" {
		return nil, fmt.Errorf("%w: empty symbol", market.ErrSymbolNotFound)
	}

	u := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s",
		c.baseURL, url.PathEscape(sym), url.QueryEscape(rng), url.QueryEscape(interval))

	body, err := c.http.Get(ctx, u)
	var statusErr *httpx.StatusError
	if err != nil && !(errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound) {
		return nil, fmt.Errorf("yahoo chart %s: %w", sym, err)
	}

	var resp chartResponse
	if jerr := json.Unmarshal(body, &resp); jerr != nil {
		if err != nil {
			return nil, fmt.Errorf("%w: %s", market.ErrSymbolNotFound, sym)
		}
		return nil, fmt.Errorf("yahoo chart %s: decode: %w", sym, jerr)
	}
	if resp.Chart.Error != nil {
		if resp.Chart.Error.Code == "Not Found" || statusErr != nil {
			return nil, fmt.Errorf("%w: %s", market.ErrSymbolNotFound, sym)
		}
		return nil, fmt.Errorf("yahoo chart %s: %s: %s", sym, resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("%w: %s", market.ErrSymbolNotFound, sym)
	}
	return &resp.Chart.Result[0], nil
}

func at(vals []*float64, i int) *float64 {
	if i >= len(vals) {
		return nil
	}
	return vals[i]
}
