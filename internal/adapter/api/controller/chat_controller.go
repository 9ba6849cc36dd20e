package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/stock-assistant/internal/adapter/api/dto"
	"github.com/hugohenrick/stock-assistant/pkg/assistant/intent"
	"github.com/hugohenrick/stock-assistant/pkg/auth"
	"github.com/hugohenrick/stock-assistant/pkg/chat"
	"github.com/hugohenrick/stock-assistant/pkg/logger"
)

// ChatController handles the assistant conversation
type ChatController struct {
	store   *chat.SessionStore
	manager *intent.IntentManager
	logger  logger.Logger
}

// NewChatController creates a new chat controller
func NewChatController(store *chat.SessionStore, manager *intent.IntentManager, log logger.Logger) *ChatController {
	return &ChatController{
		store:   store,
		manager: manager,
		logger:  log,
	}
}

// ProcessMessage godoc
// @Summary Process a message through the assistant
// @Description Classify a user message, run the matching intent and return the reply with the chat history
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body dto.ChatMessageRequest true "Message to process"
// @Success 200 {object} dto.ChatMessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/message [post]
func (c *ChatController) ProcessMessage(ctx *gin.Context) {
	var req dto.ChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Invalid request", err.Error()))
		return
	}

	sess, ok := c.session(ctx)
	if !ok {
		return
	}

	result, err := c.manager.ProcessMessage(ctx.Request.Context(), sess, req.Message)
	if err != nil {
		c.logger.Error("Erro ao registrar turno da conversa", "error", err, "session_id", sess.ID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to record conversation", err.Error()))
		return
	}

	history, err := sess.Entries(ctx.Request.Context(), 0, 0)
	if err != nil {
		c.logger.Error("Erro ao ler histórico", "error", err, "session_id", sess.ID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load history", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewChatMessageResponse(result, history))
}

// GetHistory godoc
// @Summary Get chat history
// @Description Get the chat history of the current session, oldest first
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries" default(50)
// @Param offset query int false "Entries to skip" default(0)
// @Success 200 {object} dto.ChatHistoryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/history [get]
func (c *ChatController) GetHistory(ctx *gin.Context) {
	sess, ok := c.session(ctx)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	page := dto.GetPagination(limit, offset)

	history, err := sess.Entries(ctx.Request.Context(), page.Limit, page.Offset)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to load history", err.Error()))
		return
	}
	if history == nil {
		history = []chat.Message{}
	}

	total, err := sess.Count(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to count history", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatHistoryResponse{
		SessionID: sess.ID,
		Total:     total,
		Limit:     page.Limit,
		Offset:    page.Offset,
		History:   history,
		Chart:     sess.Chart(),
	})
}

// DeleteHistory godoc
// @Summary Delete chat history
// @Description Delete the chat history and the chart panel of the current session
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/history [delete]
func (c *ChatController) DeleteHistory(ctx *gin.Context) {
	sess, ok := c.session(ctx)
	if !ok {
		return
	}

	if err := sess.Clear(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Failed to delete history", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Chat history deleted successfully", nil))
}

// session resolve a sessão do token; escreve a resposta de erro quando falha
func (c *ChatController) session(ctx *gin.Context) (*chat.Session, bool) {
	sess, err := c.store.Get(auth.GetSessionID(ctx))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, chat.ErrSessionNotFound) {
			status = http.StatusUnauthorized
		}
		ctx.JSON(status, dto.NewErrorResponse(status, "Session not found", err.Error()))
		return nil, false
	}
	return sess, true
}
