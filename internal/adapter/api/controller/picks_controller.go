package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/stock-assistant/internal/adapter/api/dto"
	"github.com/hugohenrick/stock-assistant/pkg/logger"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

// PicksController atende o painel de recomendações do dia
type PicksController struct {
	recs   market.RecommendationProvider
	logger logger.Logger
}

// NewPicksController cria uma nova instância de PicksController
func NewPicksController(recs market.RecommendationProvider, log logger.Logger) *PicksController {
	return &PicksController{
		recs:   recs,
		logger: log,
	}
}

// List retorna as ações em alta (compra) e em queda (venda)
// @Summary Recomendações do dia
// @Tags picks
// @Produce json
// @Success 200 {object} dto.PicksResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /picks [get]
func (c *PicksController) List(ctx *gin.Context) {
	buy, err := c.recs.Gainers(ctx.Request.Context())
	if err != nil {
		c.unavailable(ctx, err)
		return
	}

	sell, err := c.recs.Losers(ctx.Request.Context())
	if err != nil {
		c.unavailable(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPicksResponse(buy, sell))
}

func (c *PicksController) unavailable(ctx *gin.Context, err error) {
	c.logger.Error("Erro ao buscar recomendações", "error", err)
	ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "Recommendations unavailable", err.Error()))
}
