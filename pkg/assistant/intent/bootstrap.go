package intent

import (
	"github.com/hugohenrick/stock-assistant/pkg/logger"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

// Providers agrupa os serviços externos usados pelos handlers
type Providers struct {
	Charts          market.ChartProvider
	News            market.NewsProvider
	Recommendations market.RecommendationProvider
}

// NewDefaultManager cria o gerenciador com um handler para cada intenção
func NewDefaultManager(log logger.Logger, p Providers) *IntentManager {
	m := NewIntentManager(log)
	m.RegisterHandler(NewChartIntentHandler(log, p.Charts))
	m.RegisterHandler(NewBuyIntentHandler(log, p.Recommendations))
	m.RegisterHandler(NewSellIntentHandler(log, p.Recommendations))
	m.RegisterHandler(NewSummaryIntentHandler(log, p.Recommendations))
	m.RegisterHandler(NewNewsIntentHandler(log, p.News))
	m.RegisterHandler(NewFallbackIntentHandler(log, p.News))
	return m
}
