package intent

import (
	"context"
	"strings"

	"github.com/hugohenrick/stock-assistant/pkg/chat"
	"github.com/hugohenrick/stock-assistant/pkg/logger"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

const (
	noBuyPicksMessage  = "No top picks found at the moment. Try again later."
	noSellPicksMessage = "No stocks to avoid reported at the moment."
)

// PicksIntentHandler lists today's gainers (BUY) or losers (SELL), one
// notice per stock.
type PicksIntentHandler struct {
	logger logger.Logger
	recs   market.RecommendationProvider
	kind   Kind
}

// NewBuyIntentHandler answers "top picks" style questions from the gainers list.
func NewBuyIntentHandler(log logger.Logger, recs market.RecommendationProvider) *PicksIntentHandler {
	return &PicksIntentHandler{logger: log, recs: recs, kind: KindBuy}
}

// NewSellIntentHandler answers "what to avoid" style questions from the losers list.
func NewSellIntentHandler(log logger.Logger, recs market.RecommendationProvider) *PicksIntentHandler {
	return &PicksIntentHandler{logger: log, recs: recs, kind: KindSell}
}

func (h *PicksIntentHandler) Kind() Kind {
	return h.kind
}

func (h *PicksIntentHandler) Extract(message string) (*Intent, error) {
	return &Intent{Kind: h.kind, OriginalMessage: message}, nil
}

func (h *PicksIntentHandler) Execute(ctx context.Context, sess *chat.Session, intent *Intent) (*ActionResult, error) {
	var (
		recs []market.Recommendation
		err  error
	)
	if h.kind == KindBuy {
		recs, err = h.recs.Gainers(ctx)
	} else {
		recs, err = h.recs.Losers(ctx)
	}

	if err != nil {
		h.logger.Warn("Recommendation provider failed", "intent", h.kind, "error", err)
		return h.empty(ErrProviderUnavailable), nil
	}
	if len(recs) == 0 {
		return h.empty(ErrNoMatchFound), nil
	}

	var b strings.Builder
	level := NoticeSuccess
	if h.kind == KindBuy {
		b.WriteString("Here are today's top picks:\n")
	} else {
		level = NoticeWarning
		b.WriteString("Stocks showing weakness today:\n")
	}

	notices := make([]Notice, 0, len(recs))
	for _, rec := range recs {
		notices = append(notices, Notice{Level: level, Text: rec.Symbol})
		b.WriteString("\n- ")
		b.WriteString(rec.Symbol)
	}

	return &ActionResult{
		Success: true,
		Message: b.String(),
		Notices: notices,
	}, nil
}

func (h *PicksIntentHandler) empty(failure error) *ActionResult {
	msg := noBuyPicksMessage
	if h.kind == KindSell {
		msg = noSellPicksMessage
	}
	return &ActionResult{Success: false, Message: msg, Reason: reasonOf(failure)}
}
