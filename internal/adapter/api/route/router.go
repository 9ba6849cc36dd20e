package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/stock-assistant/internal/adapter/api/controller"
	"github.com/hugohenrick/stock-assistant/pkg/auth"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controllers agrupa os controllers registrados no roteador
type Controllers struct {
	Health     *controller.HealthController
	Session    *controller.SessionController
	Chat       *controller.ChatController
	Stock      *controller.StockController
	News       *controller.NewsController
	Picks      *controller.PicksController
	Prediction *controller.PredictionController
}

// Register monta todas as rotas da API sob basePath e a UI do Swagger
func Register(router *gin.Engine, basePath string, c Controllers, jwtService *auth.JWTService) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group(basePath)
	api.GET("/health", c.Health.Check)

	SetupSessionRoutes(api, c.Session)
	SetupChatRoutes(api, c.Chat, jwtService)
	SetupStockRoutes(api, c.Stock)
	SetupNewsRoutes(api, c.News)
	SetupPicksRoutes(api, c.Picks)
	SetupPredictionRoutes(api, c.Prediction)
}
