package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hugohenrick/stock-assistant/internal/httpx"
	"github.com/hugohenrick/stock-assistant/pkg/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tcsChart = `{
  "chart": {
    "result": [{
      "meta": {"currency": "INR", "symbol": "TCS.NS", "regularMarketPrice": 3550.5,
               "chartPreviousClose": 3500.0, "regularMarketTime": 1767225600},
      "timestamp": [1767225600, 1767312000, 1767398400],
      "indicators": {"quote": [{
        "open":   [3490.0, null, 3520.0],
        "high":   [3510.0, null, 3560.0],
        "low":    [3480.0, null, 3515.0],
        "close":  [3500.0, null, 3550.5],
        "volume": [1000, null, 1200]
      }]}
    }],
    "error": null
  }
}`

const notFound = `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(httpx.New(5*time.Second), srv.URL, ".NS")
}

func TestSymbol(t *testing.T) {
	c := New(httpx.New(time.Second), "", ".NS")
	assert.Equal(t, "TCS.NS", c.Symbol("tcs"))
	assert.Equal(t, "RELIANCE.BO", c.Symbol("RELIANCE.BO"))
	assert.Equal(t, "^NSEI", c.Symbol("^NSEI"))
	assert.Equal(t, "", c.Symbol("  "))

	bare := New(httpx.New(time.Second), "", "")
	assert.Equal(t, "AAPL", bare.Symbol("aapl"))
}

func TestHistory(t *testing.T) {
	var gotPath, gotRange, gotInterval string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRange = r.URL.Query().Get("range")
		gotInterval = r.URL.Query().Get("interval")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(tcsChart))
	})

	series, err := c.History(context.Background(), "tcs", market.PeriodMonth)
	require.NoError(t, err)

	assert.Equal(t, "/v8/finance/chart/TCS.NS", gotPath)
	assert.Equal(t, "1mo", gotRange)
	assert.Equal(t, "1d", gotInterval)

	assert.Equal(t, "TCS.NS", series.Symbol)
	assert.Equal(t, "INR", series.Currency)
	assert.Equal(t, market.PeriodMonth, series.Period)
	require.Len(t, series.Points, 2, "null candle must be skipped")
	assert.Equal(t, 3500.0, series.Points[0].Close)
	assert.Equal(t, int64(1000), series.Points[0].Volume)
	assert.Equal(t, 3550.5, series.Points[1].Close)
	assert.Equal(t, 3560.0, series.Points[1].High)
}

func TestHistoryWeekUsesIntradayInterval(t *testing.T) {
	var gotRange, gotInterval string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotRange = r.URL.Query().Get("range")
		gotInterval = r.URL.Query().Get("interval")
		w.Write([]byte(tcsChart))
	})

	_, err := c.History(context.Background(), "TCS", market.PeriodWeek)
	require.NoError(t, err)
	assert.Equal(t, "5d", gotRange)
	assert.Equal(t, "30m", gotInterval)
}

func TestHistoryNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(notFound))
	})

	_, err := c.History(context.Background(), "SHOW", market.PeriodMonth)
	assert.ErrorIs(t, err, market.ErrSymbolNotFound)
}

func TestHistoryEmptySeriesIsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[{"meta":{"symbol":"X.NS"},"timestamp":[],"indicators":{"quote":[{}]}}],"error":null}}`))
	})

	_, err := c.History(context.Background(), "X", market.PeriodMonth)
	assert.ErrorIs(t, err, market.ErrSymbolNotFound)
}

func TestHistoryUpstreamFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.History(context.Background(), "TCS", market.PeriodMonth)
	require.Error(t, err)
	assert.NotErrorIs(t, err, market.ErrSymbolNotFound)
}

func TestHistoryRejectsUnknownPeriod(t *testing.T) {
	c := New(httpx.New(time.Second), "http://unused.invalid", ".NS")
	_, err := c.History(context.Background(), "TCS", market.Period("5y"))
	assert.ErrorIs(t, err, market.ErrInvalidPeriod)
}

func TestQuote(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(tcsChart))
	})

	q, err := c.Quote(context.Background(), "TCS")
	require.NoError(t, err)
	assert.Equal(t, "TCS.NS", q.Symbol)
	assert.Equal(t, 3550.5, q.Price)
	assert.Equal(t, 3500.0, q.PreviousClose)
	assert.InDelta(t, 50.5, q.Change, 1e-9)
	assert.InDelta(t, 1.442857, q.ChangePercent, 1e-5)
	assert.Equal(t, int64(1767225600), q.Time.Unix())
}
