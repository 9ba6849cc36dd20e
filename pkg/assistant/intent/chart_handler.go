package intent

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/stock-assistant/pkg/chat"
	"github.com/hugohenrick/stock-assistant/pkg/logger"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

const noSymbolMessage = "Couldn't detect a valid stock symbol. Try something like 'Show RELIANCE chart'."

// ChartIntentHandler renders a price chart for the first candidate ticker
// the chart provider recognises.
type ChartIntentHandler struct {
	logger logger.Logger
	charts market.ChartProvider
	period market.Period
}

// NewChartIntentHandler cria o handler da intenção CHART (período padrão 1mo)
func NewChartIntentHandler(log logger.Logger, charts market.ChartProvider) *ChartIntentHandler {
	return &ChartIntentHandler{
		logger: log,
		charts: charts,
		period: market.DefaultPeriod,
	}
}

func (h *ChartIntentHandler) Kind() Kind {
	return KindChart
}

func (h *ChartIntentHandler) Extract(message string) (*Intent, error) {
	return &Intent{
		Kind:            KindChart,
		Candidates:      ChartCandidates(message),
		OriginalMessage: message,
	}, nil
}

// Execute tries one render per candidate, in order, and stops at the first
// series with data. The rendered series becomes the session's chart panel.
func (h *ChartIntentHandler) Execute(ctx context.Context, sess *chat.Session, intent *Intent) (*ActionResult, error) {
	failure := ErrInvalidSymbol

	for _, symbol := range intent.Candidates {
		series, err := h.charts.History(ctx, symbol, h.period)
		if err != nil {
			if !errors.Is(err, market.ErrSymbolNotFound) {
				h.logger.Warn("Chart provider failed", "symbol", symbol, "error", err)
				failure = ErrProviderUnavailable
			}
			continue
		}
		if series.Empty() {
			continue
		}

		sess.SetChart(series)
		return &ActionResult{
			Success: true,
			Message: fmt.Sprintf("Here's the chart for %s (%s). Check the chart panel.", symbol, h.period),
			Chart:   series,
		}, nil
	}

	return &ActionResult{
		Success: false,
		Message: noSymbolMessage,
		Reason:  reasonOf(failure),
	}, nil
}
