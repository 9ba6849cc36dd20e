package intent

import (
	"context"
	"strings"

	"github.com/hugohenrick/stock-assistant/pkg/chat"
	"github.com/hugohenrick/stock-assistant/pkg/logger"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

// SummaryIntentHandler builds the two-section market summary.
type SummaryIntentHandler struct {
	logger logger.Logger
	recs   market.RecommendationProvider
}

// NewSummaryIntentHandler cria o handler do resumo do mercado
func NewSummaryIntentHandler(log logger.Logger, recs market.RecommendationProvider) *SummaryIntentHandler {
	return &SummaryIntentHandler{logger: log, recs: recs}
}

func (h *SummaryIntentHandler) Kind() Kind {
	return KindSummary
}

func (h *SummaryIntentHandler) Extract(message string) (*Intent, error) {
	return &Intent{Kind: KindSummary, OriginalMessage: message}, nil
}

// Execute never fails: a provider error just empties its section.
func (h *SummaryIntentHandler) Execute(ctx context.Context, sess *chat.Session, intent *Intent) (*ActionResult, error) {
	var failure error

	gainers, err := h.recs.Gainers(ctx)
	if err != nil {
		h.logger.Warn("Gainers unavailable for summary", "error", err)
		gainers, failure = nil, ErrProviderUnavailable
	}
	losers, err := h.recs.Losers(ctx)
	if err != nil {
		h.logger.Warn("Losers unavailable for summary", "error", err)
		losers, failure = nil, ErrProviderUnavailable
	}

	var b strings.Builder
	b.WriteString("📊 **Market Summary Today:**\n\n")
	writeSection(&b, "**Top Gainers:**", "No gainers reported.", gainers)
	b.WriteString("\n")
	writeSection(&b, "**Top Losers:**", "No losers reported.", losers)

	return &ActionResult{
		Success: len(gainers) > 0 || len(losers) > 0,
		Message: b.String(),
		Reason:  reasonOf(failure),
	}, nil
}

func writeSection(b *strings.Builder, heading, none string, recs []market.Recommendation) {
	if len(recs) == 0 {
		b.WriteString(none)
		b.WriteString("\n")
		return
	}
	b.WriteString(heading)
	b.WriteString("\n")
	for _, rec := range recs {
		b.WriteString("- ")
		b.WriteString(rec.Symbol)
		if rec.Reason != "" {
			b.WriteString(" – ")
			b.WriteString(rec.Reason)
		}
		b.WriteString("\n")
	}
}
