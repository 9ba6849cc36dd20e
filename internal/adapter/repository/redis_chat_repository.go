package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hugohenrick/stock-assistant/pkg/chat"
	"github.com/redis/go-redis/v9"
)

const chatKeyPrefix = "stockassistant:chat:"

// RedisChatRepository guarda o histórico de cada sessão numa lista Redis.
// RPUSH preserva a ordem de inserção; a chave expira junto com a sessão.
type RedisChatRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisChatRepository cria um repositório de chat sobre o Redis
func NewRedisChatRepository(client *redis.Client, ttl time.Duration) chat.Repository {
	return &RedisChatRepository{
		client: client,
		ttl:    ttl,
	}
}

func chatKey(sessionID string) string {
	return chatKeyPrefix + sessionID
}

func (r *RedisChatRepository) SaveMessage(ctx context.Context, message *chat.Message) error {
	if message.SessionID == "" {
		return chat.ErrSessionNotFound
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("erro ao serializar mensagem: %w", err)
	}

	key := chatKey(message.SessionID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("erro ao salvar mensagem: %w", err)
	}
	return nil
}

func (r *RedisChatRepository) GetHistory(ctx context.Context, sessionID string, limit, offset int) ([]chat.Message, error) {
	if offset < 0 {
		offset = 0
	}
	stop := int64(-1)
	if limit > 0 {
		stop = int64(offset + limit - 1)
	}

	raw, err := r.client.LRange(ctx, chatKey(sessionID), int64(offset), stop).Result()
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico: %w", err)
	}

	messages := make([]chat.Message, 0, len(raw))
	for _, item := range raw {
		var msg chat.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("erro ao ler mensagem: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *RedisChatRepository) DeleteHistory(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, chatKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("erro ao deletar histórico: %w", err)
	}
	return nil
}

func (r *RedisChatRepository) CountMessages(ctx context.Context, sessionID string) (int, error) {
	n, err := r.client.LLen(ctx, chatKey(sessionID)).Result()
	if err != nil {
		return 0, fmt.Errorf("erro ao contar mensagens: %w", err)
	}
	return int(n), nil
}
