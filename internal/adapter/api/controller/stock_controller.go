package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/stock-assistant/internal/adapter/api/dto"
	"github.com/hugohenrick/stock-assistant/pkg/logger"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

// StockController atende o painel de consulta de preços
type StockController struct {
	charts market.ChartProvider
	logger logger.Logger
}

// NewStockController cria uma nova instância de StockController
func NewStockController(charts market.ChartProvider, log logger.Logger) *StockController {
	return &StockController{
		charts: charts,
		logger: log,
	}
}

// GetChart busca o histórico de preços de uma ação
// @Summary Histórico de preços
// @Description Série de preços de uma ação para o período pedido
// @Tags stocks
// @Produce json
// @Param symbol path string true "Ticker, ex.: RELIANCE"
// @Param period query string false "1d, 1wk, 1mo, 3mo, 6mo ou 1y" default(1mo)
// @Success 200 {object} dto.ChartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /stocks/{symbol}/chart [get]
func (c *StockController) GetChart(ctx *gin.Context) {
	symbol := normalizeSymbol(ctx.Param("symbol"))
	if symbol == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Symbol not provided", ""))
		return
	}

	period, err := market.ParsePeriod(ctx.Query("period"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid period", err.Error()))
		return
	}

	series, err := c.charts.History(ctx.Request.Context(), symbol, period)
	if err == nil && series.Empty() {
		err = market.ErrSymbolNotFound
	}
	if err != nil {
		c.providerError(ctx, symbol, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewChartResponse(symbol, series))
}

// GetPrice busca a cotação atual de uma ação
// @Summary Cotação atual
// @Description Último preço conhecido de uma ação
// @Tags stocks
// @Produce json
// @Param symbol path string true "Ticker, ex.: TCS"
// @Success 200 {object} market.Quote
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /stocks/{symbol}/price [get]
func (c *StockController) GetPrice(ctx *gin.Context) {
	symbol := normalizeSymbol(ctx.Param("symbol"))
	if symbol == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Symbol not provided", ""))
		return
	}

	quote, err := c.charts.Quote(ctx.Request.Context(), symbol)
	if err != nil {
		c.providerError(ctx, symbol, err)
		return
	}

	ctx.JSON(http.StatusOK, quote)
}

func (c *StockController) providerError(ctx *gin.Context, symbol string, err error) {
	if errors.Is(err, market.ErrSymbolNotFound) {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Symbol not found", symbol))
		return
	}
	c.logger.Error("Erro no provedor de cotações", "error", err, "symbol", symbol)
	ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "Market data unavailable", err.Error()))
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
