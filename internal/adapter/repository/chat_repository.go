package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/stock-assistant/pkg/chat"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatRepository persiste o histórico de chat na tabela chat_history do PostgreSQL
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository cria um repositório de chat sobre o pool do PostgreSQL
func NewChatRepository(db *pgxpool.Pool) chat.Repository {
	return &ChatRepository{
		db: db,
	}
}

func (r *ChatRepository) SaveMessage(ctx context.Context, message *chat.Message) error {
	if message.SessionID == "" {
		return chat.ErrSessionNotFound
	}

	query := `
		INSERT INTO chat_history (id, session_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.SessionID,
		string(message.Role),
		message.Content,
		message.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("erro ao salvar mensagem: %w", err)
	}

	return nil
}

func (r *ChatRepository) GetHistory(ctx context.Context, sessionID string, limit, offset int) ([]chat.Message, error) {
	// seq é a ordem de inserção; created_at pode voltar no tempo
	query := `
		SELECT id, role, content, created_at
		FROM chat_history
		WHERE session_id = $1
		ORDER BY seq ASC
		LIMIT $2 OFFSET $3
	`

	var pgLimit interface{}
	if limit > 0 {
		pgLimit = limit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, query, sessionID, pgLimit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico: %w", err)
	}
	defer rows.Close()

	messages := []chat.Message{}
	for rows.Next() {
		var msg chat.Message
		var role string
		err := rows.Scan(
			&msg.ID,
			&role,
			&msg.Content,
			&msg.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler mensagem: %w", err)
		}
		msg.Role = chat.Role(role)
		msg.SessionID = sessionID
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler linhas: %w", err)
	}

	return messages, nil
}

func (r *ChatRepository) DeleteHistory(ctx context.Context, sessionID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM chat_history WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("erro ao deletar histórico: %w", err)
	}
	return nil
}

func (r *ChatRepository) CountMessages(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM chat_history WHERE session_id = $1`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar mensagens: %w", err)
	}
	return count, nil
}
