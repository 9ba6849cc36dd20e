package dto

import "github.com/hugohenrick/stock-assistant/pkg/market"

// ChartResponse é o painel de consulta de preço de uma ação
type ChartResponse struct {
	Symbol  string          `json:"symbol"`
	Period  market.Period   `json:"period"`
	Periods []market.Period `json:"periods"`
	Series  *market.Series  `json:"series"`
}

// NewChartResponse monta o painel com a lista de períodos disponíveis
func NewChartResponse(symbol string, series *market.Series) ChartResponse {
	return ChartResponse{
		Symbol:  symbol,
		Period:  series.Period,
		Periods: market.Periods,
		Series:  series,
	}
}

// PicksResponse contém as ações em alta e em queda do dia
type PicksResponse struct {
	Buy  []market.Recommendation `json:"buy"`
	Sell []market.Recommendation `json:"sell"`
}

// NewPicksResponse garante listas vazias em vez de null no JSON
func NewPicksResponse(buy, sell []market.Recommendation) PicksResponse {
	if buy == nil {
		buy = []market.Recommendation{}
	}
	if sell == nil {
		sell = []market.Recommendation{}
	}
	return PicksResponse{Buy: buy, Sell: sell}
}
