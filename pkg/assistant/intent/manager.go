package intent

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hugohenrick/stock-assistant/pkg/chat"
	"github.com/hugohenrick/stock-assistant/pkg/logger"
)

// HelpMessage is the reply when nothing else applies.
const HelpMessage = "I can help with stock charts, prices, top picks, and news. Try 'top picks', 'sell today', or 'market summary'."

const handlerFailedMessage = "Sorry, I couldn't complete that request right now. Please try again."

// IntentManager gerencia o processamento de intenções do assistente
type IntentManager struct {
	// Handlers registrados, um por tipo de intenção
	handlers map[Kind]IntentHandler

	// Logger para registrar eventos e erros
	logger logger.Logger
}

// NewIntentManager cria uma nova instância do gerenciador de intenções
func NewIntentManager(log logger.Logger) *IntentManager {
	return &IntentManager{
		handlers: make(map[Kind]IntentHandler),
		logger:   log,
	}
}

// RegisterHandler registra um handler; um segundo registro para o mesmo Kind substitui o primeiro
func (m *IntentManager) RegisterHandler(handler IntentHandler) {
	m.handlers[handler.Kind()] = handler
	m.logger.Info("Handler de intenção registrado", "kind", handler.Kind(), "handler", fmt.Sprintf("%T", handler))
}

// Handler returns the handler registered for kind, if any.
func (m *IntentManager) Handler(kind Kind) (IntentHandler, bool) {
	h, ok := m.handlers[kind]
	return h, ok
}

// ProcessMessage runs one turn: it appends the user entry, classifies the
// message, runs the matching handler and appends the assistant reply. Every
// message produces a result; the returned error is reserved for failures to
// write the conversation log.
func (m *IntentManager) ProcessMessage(ctx context.Context, sess *chat.Session, message string) (*ActionResult, error) {
	if _, err := sess.Append(ctx, chat.RoleUser, message); err != nil {
		return nil, err
	}

	kind := Classify(message)
	m.logger.Info("Processing message", "session_id", sess.ID, "intent", kind)

	result := m.execute(ctx, sess, kind, message)
	result.Intent = kind
	result.OperationID = uuid.New().String()

	if result.Reason != "" {
		m.logger.Warn("Intent degraded", "session_id", sess.ID, "intent", kind, "reason", result.Reason)
	}

	if result.Message != "" {
		if _, err := sess.Append(ctx, chat.RoleAssistant, result.Message); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (m *IntentManager) execute(ctx context.Context, sess *chat.Session, kind Kind, message string) *ActionResult {
	handler, ok := m.Handler(kind)
	if !ok {
		m.logger.Warn("No handler registered", "intent", kind)
		return &ActionResult{Success: false, Message: HelpMessage}
	}

	intent, err := handler.Extract(message)
	if err != nil {
		m.logger.Error("Erro ao extrair intenção", "error", err, "intent", kind)
		return &ActionResult{Success: false, Message: HelpMessage}
	}

	result, err := handler.Execute(ctx, sess, intent)
	if err != nil || result == nil {
		m.logger.Error("Erro ao executar ação", "error", err, "intent", kind)
		return &ActionResult{
			Success: false,
			Message: handlerFailedMessage,
			Reason:  ErrProviderUnavailable.Error(),
		}
	}
	return result
}
