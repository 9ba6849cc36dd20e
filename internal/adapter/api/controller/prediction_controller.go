package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/stock-assistant/internal/adapter/api/dto"
	"github.com/hugohenrick/stock-assistant/pkg/logger"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

// PredictionController atende o painel de previsão. O provedor é opcional.
type PredictionController struct {
	predictions market.PredictionProvider
	logger      logger.Logger
}

// NewPredictionController cria uma nova instância; predictions pode ser nil
func NewPredictionController(predictions market.PredictionProvider, log logger.Logger) *PredictionController {
	return &PredictionController{
		predictions: predictions,
		logger:      log,
	}
}

// Get retorna a previsão do próximo fechamento
// @Summary Previsão de preço
// @Description Próximo fechamento previsto e métricas do modelo
// @Tags predictions
// @Produce json
// @Param symbol path string true "Ticker"
// @Success 200 {object} dto.PredictionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /predictions/{symbol} [get]
func (c *PredictionController) Get(ctx *gin.Context) {
	if c.predictions == nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "Prediction is not configured", ""))
		return
	}

	symbol := normalizeSymbol(ctx.Param("symbol"))
	if symbol == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Symbol not provided", ""))
		return
	}

	prediction, err := c.predictions.Predict(ctx.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, market.ErrSymbolNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Symbol not found", symbol))
			return
		}
		c.logger.Error("Erro no modelo de previsão", "error", err, "symbol", symbol)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "Prediction unavailable", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPredictionResponse(prediction))
}
