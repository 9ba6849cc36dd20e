package dto

import (
	"fmt"

	"github.com/hugohenrick/stock-assistant/pkg/market"
)

// PredictionResponse traz a previsão e as linhas prontas para exibição
type PredictionResponse struct {
	Symbol     string   `json:"symbol"`
	Prediction float64  `json:"prediction"`
	MAE        float64  `json:"mae"`
	RMSE       float64  `json:"rmse"`
	R2         float64  `json:"r2"`
	Lines      []string `json:"lines"`
}

// ToPredictionResponse formata os valores como no painel de previsão
func ToPredictionResponse(p *market.Prediction) PredictionResponse {
	return PredictionResponse{
		Symbol:     p.Symbol,
		Prediction: p.Value,
		MAE:        p.MAE,
		RMSE:       p.RMSE,
		R2:         p.R2,
		Lines: []string{
			fmt.Sprintf("Predicted next close: ₹%.2f", p.Value),
			fmt.Sprintf("Mean Absolute Error (MAE): %.2f", p.MAE),
			fmt.Sprintf("Root Mean Squared Error (RMSE): %.2f", p.RMSE),
			fmt.Sprintf("R² Score: %.4f", p.R2),
		},
	}
}
