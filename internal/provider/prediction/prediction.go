// Package prediction calls the external price-prediction model. The model
// is opaque to this service: it gets a symbol and returns an estimate plus
// its evaluation metrics.
package prediction

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/hugohenrick/stock-assistant/internal/httpx"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

type Client struct {
	http    *httpx.Client
	baseURL string
}

// New creates a client for the prediction endpoint at baseURL.
func New(hc *httpx.Client, baseURL string) *Client {
	return &Client{http: hc, baseURL: strings.TrimRight(baseURL, "/")}
}

type predictResponse struct {
	Symbol     string   `json:"symbol"`
	Prediction *float64 `json:"prediction"`
	MAE        float64  `json:"mae"`
	RMSE       float64  `json:"rmse"`
	R2         float64  `json:"r2"`
	Error      string   `json:"error"`
}

func (c *Client) Predict(ctx context.Context, symbol string) (*market.Prediction, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", market.ErrSymbolNotFound)
	}

	body, err := c.http.Get(ctx, c.baseURL+"/predict?symbol="+url.QueryEscape(symbol))
	if err != nil {
		return nil, fmt.Errorf("prediction %s: %w", symbol, err)
	}

	var res predictResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("prediction %s: decode: %w", symbol, err)
	}
	if res.Error != "" {
		return nil, fmt.Errorf("prediction %s: %s", symbol, res.Error)
	}
	if res.Prediction == nil {
		return nil, fmt.Errorf("%w: %s", market.ErrSymbolNotFound, symbol)
	}

	return &market.Prediction{
		Symbol: symbol,
		Value:  *res.Prediction,
		MAE:    res.MAE,
		RMSE:   res.RMSE,
		R2:     res.R2,
	}, nil
}
