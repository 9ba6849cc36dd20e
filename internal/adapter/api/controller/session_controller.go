package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/stock-assistant/internal/adapter/api/dto"
	"github.com/hugohenrick/stock-assistant/pkg/auth"
	"github.com/hugohenrick/stock-assistant/pkg/chat"
	"github.com/hugohenrick/stock-assistant/pkg/logger"
)

// SessionController abre sessões de chat
type SessionController struct {
	store      *chat.SessionStore
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewSessionController cria uma nova instância de SessionController
func NewSessionController(store *chat.SessionStore, jwtService *auth.JWTService, log logger.Logger) *SessionController {
	return &SessionController{
		store:      store,
		jwtService: jwtService,
		logger:     log,
	}
}

// Create abre uma nova sessão
// @Summary Abre uma sessão de chat
// @Description Cria uma sessão vazia e devolve o token que a identifica
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sessions [post]
func (c *SessionController) Create(ctx *gin.Context) {
	sess := c.store.Create()

	token, expiresAt, err := c.jwtService.GenerateToken(sess.ID)
	if err != nil {
		c.store.Delete(sess.ID)
		c.logger.Error("Erro ao gerar token de sessão", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to create session", err.Error()))
		return
	}

	c.logger.Info("Session created", "session_id", sess.ID)
	ctx.JSON(http.StatusCreated, dto.SessionResponse{
		SessionID: sess.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
