package repository

import (
	"context"
	"sync"

	"github.com/hugohenrick/stock-assistant/pkg/chat"
)

// MemoryChatRepository mantém o histórico de chat em memória, por sessão.
// É o backend padrão: o log vive até a sessão expirar (SessionStore.Sweep).
type MemoryChatRepository struct {
	mu   sync.RWMutex
	logs map[string][]chat.Message
}

// NewMemoryChatRepository cria um repositório de chat em memória
func NewMemoryChatRepository() chat.Repository {
	return &MemoryChatRepository{
		logs: make(map[string][]chat.Message),
	}
}

func (r *MemoryChatRepository) SaveMessage(ctx context.Context, message *chat.Message) error {
	if message.SessionID == "" {
		return chat.ErrSessionNotFound
	}

	r.mu.Lock()
	r.logs[message.SessionID] = append(r.logs[message.SessionID], *message)
	r.mu.Unlock()
	return nil
}

func (r *MemoryChatRepository) GetHistory(ctx context.Context, sessionID string, limit, offset int) ([]chat.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return page(r.logs[sessionID], limit, offset), nil
}

func (r *MemoryChatRepository) DeleteHistory(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.logs, sessionID)
	r.mu.Unlock()
	return nil
}

func (r *MemoryChatRepository) CountMessages(ctx context.Context, sessionID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.logs[sessionID]), nil
}

// page copia a janela [offset, offset+limit) do log. limit <= 0 significa sem limite.
func page(log []chat.Message, limit, offset int) []chat.Message {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(log) {
		return []chat.Message{}
	}
	end := len(log)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]chat.Message, end-offset)
	copy(out, log[offset:end])
	return out
}
