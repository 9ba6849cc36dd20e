package chat

import (
	"context"
	"errors"
)

// ErrSessionNotFound indica que a sessão não existe ou expirou
var ErrSessionNotFound = errors.New("sessão não encontrada")

// Repository define a interface para operações de repositório do histórico de chat
type Repository interface {
	// SaveMessage salva uma nova mensagem no final do histórico da sessão
	SaveMessage(ctx context.Context, message *Message) error

	// GetHistory retorna o histórico da sessão em ordem cronológica (mais antiga primeiro)
	GetHistory(ctx context.Context, sessionID string, limit, offset int) ([]Message, error)

	// DeleteHistory deleta todo o histórico de uma sessão
	DeleteHistory(ctx context.Context, sessionID string) error

	// CountMessages conta quantas mensagens uma sessão tem
	CountMessages(ctx context.Context, sessionID string) (int, error)
}
