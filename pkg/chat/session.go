package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hugohenrick/stock-assistant/pkg/market"
)

// Session is the per-user conversation context handed to the intent router.
// The log itself lives in the Repository; the session only remembers which
// chart is currently on the chart panel.
type Session struct {
	ID        string
	CreatedAt time.Time

	repo Repository

	mu       sync.RWMutex
	chart    *market.Series
	lastSeen time.Time
}

// NewSession binds a session ID to a log repository.
func NewSession(id string, repo Repository) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        id,
		CreatedAt: now,
		repo:      repo,
		lastSeen:  now,
	}
}

// Touch marca a sessão como usada agora
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now().UTC()
	s.mu.Unlock()
}

// LastSeen returns when the session was last used.
func (s *Session) LastSeen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}

// Append adds one entry to the end of the log.
func (s *Session) Append(ctx context.Context, role Role, content string) (*Message, error) {
	msg := NewMessage(s.ID, role, content)
	if err := s.repo.SaveMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("erro ao salvar mensagem %s: %w", role, err)
	}
	return msg, nil
}

// Entries returns the log in chronological order. limit <= 0 means no limit.
func (s *Session) Entries(ctx context.Context, limit, offset int) ([]Message, error) {
	return s.repo.GetHistory(ctx, s.ID, limit, offset)
}

// Count returns the number of entries in the log.
func (s *Session) Count(ctx context.Context) (int, error) {
	return s.repo.CountMessages(ctx, s.ID)
}

// Clear removes the whole log and the active chart.
func (s *Session) Clear(ctx context.Context) error {
	s.SetChart(nil)
	return s.repo.DeleteHistory(ctx, s.ID)
}

// SetChart replaces the series shown on the chart panel.
func (s *Session) SetChart(series *market.Series) {
	s.mu.Lock()
	s.chart = series
	s.mu.Unlock()
}

// Chart returns the series shown on the chart panel, if any.
func (s *Session) Chart() *market.Series {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chart
}
