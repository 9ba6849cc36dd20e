package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/stock-assistant/internal/adapter/api/dto"
	"github.com/hugohenrick/stock-assistant/pkg/logger"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

// NewsController atende o painel de notícias
type NewsController struct {
	news   market.NewsProvider
	logger logger.Logger
}

// NewNewsController cria uma nova instância de NewsController
func NewNewsController(news market.NewsProvider, log logger.Logger) *NewsController {
	return &NewsController{
		news:   news,
		logger: log,
	}
}

// List retorna as últimas notícias do mercado
// @Summary Últimas notícias
// @Description Manchetes do provedor de notícias configurado
// @Tags news
// @Produce json
// @Success 200 {object} dto.NewsResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /news [get]
func (c *NewsController) List(ctx *gin.Context) {
	items, err := c.news.Fetch(ctx.Request.Context())
	if err != nil {
		c.logger.Error("Erro ao buscar notícias", "error", err, "source", c.news.Name())
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "News unavailable", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewNewsResponse(c.news.Name(), items))
}
