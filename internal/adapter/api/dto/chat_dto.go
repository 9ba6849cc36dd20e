package dto

import (
	"github.com/hugohenrick/stock-assistant/pkg/assistant/intent"
	"github.com/hugohenrick/stock-assistant/pkg/chat"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

// ChatMessageRequest representa uma mensagem enviada pelo usuário.
// Mensagem vazia é aceita e recebe a resposta de ajuda.
type ChatMessageRequest struct {
	Message string `json:"message"`
}

// ChatMessageResponse é a resposta de um turno da conversa
type ChatMessageResponse struct {
	Response    string          `json:"response"`
	Intent      intent.Kind     `json:"intent"`
	Success     bool            `json:"success"`
	Reason      string          `json:"reason,omitempty"`
	Notices     []intent.Notice `json:"notices,omitempty"`
	Chart       *market.Series  `json:"chart,omitempty"`
	OperationID string          `json:"operation_id"`
	History     []chat.Message  `json:"history"`
}

// NewChatMessageResponse monta a resposta a partir do resultado do roteador
func NewChatMessageResponse(result *intent.ActionResult, history []chat.Message) ChatMessageResponse {
	if history == nil {
		history = []chat.Message{}
	}
	return ChatMessageResponse{
		Response:    result.Message,
		Intent:      result.Intent,
		Success:     result.Success,
		Reason:      result.Reason,
		Notices:     result.Notices,
		Chart:       result.Chart,
		OperationID: result.OperationID,
		History:     history,
	}
}

// ChatHistoryResponse é o histórico paginado de uma sessão
type ChatHistoryResponse struct {
	SessionID string         `json:"session_id"`
	Total     int            `json:"total"`
	Limit     int            `json:"limit"`
	Offset    int            `json:"offset"`
	History   []chat.Message `json:"history"`
	Chart     *market.Series `json:"chart,omitempty"`
}
