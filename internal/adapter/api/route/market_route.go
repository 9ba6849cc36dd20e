package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/stock-assistant/internal/adapter/api/controller"
)

// SetupStockRoutes configura o painel de consulta de preços
func SetupStockRoutes(router *gin.RouterGroup, stockController *controller.StockController) {
	stockRouter := router.Group("/stocks")
	{
		stockRouter.GET("/:symbol/chart", stockController.GetChart)
		stockRouter.GET("/:symbol/price", stockController.GetPrice)
	}
}

// SetupNewsRoutes configura o painel de notícias
func SetupNewsRoutes(router *gin.RouterGroup, newsController *controller.NewsController) {
	router.GET("/news", newsController.List)
}

// SetupPicksRoutes configura o painel de recomendações
func SetupPicksRoutes(router *gin.RouterGroup, picksController *controller.PicksController) {
	router.GET("/picks", picksController.List)
}

// SetupPredictionRoutes configura o painel de previsão
func SetupPredictionRoutes(router *gin.RouterGroup, predictionController *controller.PredictionController) {
	router.GET("/predictions/:symbol", predictionController.Get)
}
