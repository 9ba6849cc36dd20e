package intent

import (
	"context"

	"github.com/hugohenrick/stock-assistant/pkg/chat"
	"github.com/hugohenrick/stock-assistant/pkg/market"
)

// Kind is the classified purpose of a user message.
type Kind string

const (
	KindChart    Kind = "chart"
	KindBuy      Kind = "buy"
	KindSell     Kind = "sell"
	KindSummary  Kind = "summary"
	KindNews     Kind = "news"
	KindFallback Kind = "fallback"
)

// Intent representa uma intenção detectada em uma mensagem do usuário
type Intent struct {
	Kind Kind `json:"kind"`

	// Tickers candidatos, na ordem em que aparecem (CHART)
	Candidates []string `json:"candidates,omitempty"`

	// Palavras-chave para filtrar notícias (NEWS / FALLBACK)
	Keywords []string `json:"keywords,omitempty"`

	// Mensagem original
	OriginalMessage string `json:"original_message"`
}

// NoticeLevel tells the dashboard how to style a notice.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is one standalone message shown next to the reply, e.g. one per
// recommended stock.
type Notice struct {
	Level NoticeLevel `json:"level"`
	Text  string      `json:"text"`
}

// ActionResult representa o resultado de uma ação executada pelo sistema
type ActionResult struct {
	Intent Kind `json:"intent"`

	// Sucesso ou falha da operação
	Success bool `json:"success"`

	// Mensagem para o usuário; vira a entrada do assistente no histórico
	Message string `json:"message"`

	// Mensagens avulsas (uma por recomendação)
	Notices []Notice `json:"notices,omitempty"`

	// Gráfico renderizado pela intenção CHART
	Chart *market.Series `json:"chart,omitempty"`

	// Nome da falha tratada (provider_unavailable, no_match_found, invalid_symbol)
	Reason string `json:"reason,omitempty"`

	// ID da operação (para auditoria)
	OperationID string `json:"operation_id,omitempty"`
}

// IntentHandler é a interface para os manipuladores de intenções específicas
type IntentHandler interface {
	// Kind informa qual intenção este handler atende
	Kind() Kind

	// Extrai a intenção e entidades da mensagem
	Extract(message string) (*Intent, error)

	// Executa a ação associada à intenção
	Execute(ctx context.Context, sess *chat.Session, intent *Intent) (*ActionResult, error)
}
