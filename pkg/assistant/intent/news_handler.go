package intent

import (
	"context"
	"fmt"
	"strings"

	"github.com/hugohenrick/stock-assistant/pkg/chat"
	"github.com/hugohenrick/stock-assistant/pkg/logger"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

const (
	newsLimit     = 5
	fallbackLimit = 3

	noNewsMessage = "Couldn't find specific news. Check the top news section above."
)

// NewsIntentHandler answers NEWS questions and, with a smaller cap and the
// help text as last resort, FALLBACK ones.
type NewsIntentHandler struct {
	logger logger.Logger
	news   market.NewsProvider
	kind   Kind
}

// NewNewsIntentHandler cria o handler de NEWS (até 5 notícias)
func NewNewsIntentHandler(log logger.Logger, news market.NewsProvider) *NewsIntentHandler {
	return &NewsIntentHandler{logger: log, news: news, kind: KindNews}
}

// NewFallbackIntentHandler cria o handler de FALLBACK (até 3 notícias, senão a ajuda)
func NewFallbackIntentHandler(log logger.Logger, news market.NewsProvider) *NewsIntentHandler {
	return &NewsIntentHandler{logger: log, news: news, kind: KindFallback}
}

func (h *NewsIntentHandler) Kind() Kind {
	return h.kind
}

func (h *NewsIntentHandler) Extract(message string) (*Intent, error) {
	return &Intent{
		Kind:            h.kind,
		Keywords:        Keywords(message),
		OriginalMessage: message,
	}, nil
}

func (h *NewsIntentHandler) Execute(ctx context.Context, sess *chat.Session, intent *Intent) (*ActionResult, error) {
	limit, header, none := newsLimit, "🗞️ Here's the latest news related to your query:\n", noNewsMessage
	if h.kind == KindFallback {
		limit, header, none = fallbackLimit, "Here's what I found related to your query:\n", HelpMessage
	}

	items, err := h.news.Fetch(ctx)
	if err != nil {
		h.logger.Warn("News provider failed", "provider", h.news.Name(), "intent", h.kind, "error", err)
		return &ActionResult{Success: false, Message: none, Reason: reasonOf(ErrProviderUnavailable)}, nil
	}

	matched := MatchNews(items, intent.Keywords, limit)
	if len(matched) == 0 {
		return &ActionResult{Success: false, Message: none, Reason: reasonOf(ErrNoMatchFound)}, nil
	}

	var b strings.Builder
	b.WriteString(header)
	for _, item := range matched {
		fmt.Fprintf(&b, "\n- %s (%s)", item.Title, item.URL)
	}

	return &ActionResult{Success: true, Message: b.String()}, nil
}
