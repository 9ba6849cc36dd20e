package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/stock-assistant/internal/adapter/api/controller"
	"github.com/hugohenrick/stock-assistant/pkg/auth"
)

// SetupChatRoutes configura as rotas do assistente
func SetupChatRoutes(router *gin.RouterGroup, chatController *controller.ChatController, jwtService *auth.JWTService) {
	// Toda rota de chat precisa do token da sessão
	chatGroup := router.Group("/chat")
	chatGroup.Use(auth.SessionMiddleware(jwtService))
	{
		chatGroup.POST("/message", chatController.ProcessMessage)
		chatGroup.GET("/history", chatController.GetHistory)
		chatGroup.DELETE("/history", chatController.DeleteHistory)
	}
}
