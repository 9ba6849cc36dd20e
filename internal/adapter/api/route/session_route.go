package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/stock-assistant/internal/adapter/api/controller"
)

// SetupSessionRoutes configura a abertura de sessões (sem autenticação)
func SetupSessionRoutes(router *gin.RouterGroup, sessionController *controller.SessionController) {
	router.POST("/sessions", sessionController.Create)
}
