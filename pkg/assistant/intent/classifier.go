package intent

import (
	"strings"

	"github.com/hugohenrick/stock-assistant/pkg/market"
)

var (
	chartKeywords   = []string{"chart", "price"}
	buyKeywords     = []string{"buy", "recommend", "top pick", "top stocks", "which stock"}
	sellKeywords    = []string{"sell", "dump", "what to avoid", "exit"}
	summaryKeywords = []string{"market summary", "today's trend", "market today", "what's the trend"}
	newsKeywords    = []string{"news", "latest"}
)

// chartStopwords never count as ticker candidates.
var chartStopwords = map[string]struct{}{
	"CHART": {}, "PRICE": {}, "SHOW": {}, "ME": {},
	"FOR": {}, "OF": {}, "THE": {}, "A": {},
}

// Classify maps any message to exactly one Kind. Rules are checked in
// priority order and the first match wins; nothing matched means
// KindFallback.
func Classify(message string) Kind {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, chartKeywords):
		return KindChart
	case containsAny(lower, buyKeywords):
		return KindBuy
	case containsAny(lower, sellKeywords):
		return KindSell
	case containsAny(lower, summaryKeywords):
		return KindSummary
	case containsAny(lower, newsKeywords):
		return KindNews
	default:
		return KindFallback
	}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// ChartCandidates returns the upper-cased tokens of message that could be
// ticker symbols, left to right. Trailing . , ? ! are stripped before the
// stopword check; duplicates are kept.
func ChartCandidates(message string) []string {
	var out []string
	for _, tok := range strings.Fields(strings.ToUpper(message)) {
		tok = strings.TrimRight(tok, ".,?!")
		if tok == "" {
			continue
		}
		if _, stop := chartStopwords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// Keywords splits message on whitespace after lower-casing it.
func Keywords(message string) []string {
	return strings.Fields(strings.ToLower(message))
}

// MatchNews keeps the items whose lower-cased title or description contains
// at least one keyword, in provider order, up to limit items.
func MatchNews(items []market.NewsItem, keywords []string, limit int) []market.NewsItem {
	var out []market.NewsItem
	for _, item := range items {
		if limit > 0 && len(out) == limit {
			break
		}
		title := strings.ToLower(item.Title)
		desc := strings.ToLower(item.Description)
		for _, kw := range keywords {
			if strings.Contains(title, kw) || strings.Contains(desc, kw) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
