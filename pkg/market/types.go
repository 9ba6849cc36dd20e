// Package market holds the stock-market domain types shared by the assistant
// and the providers that feed it.
package market

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrSymbolNotFound is returned by a ChartProvider when the upstream has no
	// price series for a symbol.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrInvalidPeriod is returned by ParsePeriod for unsupported periods.
	ErrInvalidPeriod = errors.New("invalid period")
)

// Period is the span of price history requested for a chart.
type Period string

const (
	PeriodDay         Period = "1d"
	PeriodWeek        Period = "1wk"
	PeriodMonth       Period = "1mo"
	PeriodThreeMonths Period = "3mo"
	PeriodSixMonths   Period = "6mo"
	PeriodYear        Period = "1y"
)

// DefaultPeriod is used by the chat chart intent and the lookup panel.
const DefaultPeriod = PeriodMonth

// Periods lists the supported periods in display order.
var Periods = []Period{PeriodDay, PeriodWeek, PeriodMonth, PeriodThreeMonths, PeriodSixMonths, PeriodYear}

// ParsePeriod validates s against the supported periods. An empty string
// yields DefaultPeriod.
func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return DefaultPeriod, nil
	}
	for _, p := range Periods {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
}

// PricePoint is one candle of a price series.
type PricePoint struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Series is the price history of a symbol over a period.
type Series struct {
	Symbol   string       `json:"symbol"`
	Period   Period       `json:"period"`
	Currency string       `json:"currency"`
	Points   []PricePoint `json:"points"`
}

// Empty reports whether the series has no usable points.
func (s *Series) Empty() bool {
	return s == nil || len(s.Points) == 0
}

// Quote is the latest known price of a symbol.
type Quote struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	PreviousClose float64   `json:"previous_close"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"`
	Currency      string    `json:"currency"`
	Time          time.Time `json:"time"`
}

// NewsItem is a headline from a news provider.
type NewsItem struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

// Recommendation is a trending stock with a short reason.
type Recommendation struct {
	Symbol string `json:"symbol"`
	Reason string `json:"reason"`
}

// Prediction is an estimate of the next closing price plus the model's
// evaluation metrics.
type Prediction struct {
	Symbol string  `json:"symbol"`
	Value  float64 `json:"value"`
	MAE    float64 `json:"mae"`
	RMSE   float64 `json:"rmse"`
	R2     float64 `json:"r2"`
}
