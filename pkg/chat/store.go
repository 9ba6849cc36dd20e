package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore keeps the live sessions of this process. Logs survive in the
// Repository, so a session unknown to the store (e.g. after a restart) is
// re-attached on Get. Sessions idle for longer than ttl are evicted together
// with their logs; ttl <= 0 keeps them forever.
type SessionStore struct {
	repo Repository
	ttl  time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore cria um store de sessões sobre o repositório informado
func NewSessionStore(repo Repository, ttl time.Duration) *SessionStore {
	return &SessionStore{
		repo:     repo,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create opens a new session with a fresh ID.
func (s *SessionStore) Create() *Session {
	sess := NewSession(uuid.New().String(), s.repo)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the session for id, re-attaching it to the repository when
// this process has not seen it yet.
func (s *SessionStore) Get(id string) (*Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}

	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		sess.Touch()
		return sess, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.Touch()
		return sess, nil
	}
	sess = NewSession(id, s.repo)
	s.sessions[id] = sess
	return sess, nil
}

// Delete forgets a session. Its log is left to the repository.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep remove as sessões ociosas há mais de ttl em relação a now e apaga
// seus logs. Retorna quantas foram removidas.
func (s *SessionStore) Sweep(ctx context.Context, now time.Time) (int, error) {
	if s.ttl <= 0 {
		return 0, nil
	}

	var expired []string
	s.mu.Lock()
	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen()) > s.ttl {
			expired = append(expired, id)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	var errs []error
	for _, id := range expired {
		if err := s.repo.DeleteHistory(ctx, id); err != nil {
			errs = append(errs, err)
		}
	}
	return len(expired), errors.Join(errs...)
}

// Run chama Sweep a cada interval até ctx ser cancelado.
// onSweep, se não for nil, recebe o resultado de cada passada.
func (s *SessionStore) Run(ctx context.Context, interval time.Duration, onSweep func(evicted int, err error)) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := s.Sweep(ctx, now)
			if onSweep != nil {
				onSweep(n, err)
			}
		}
	}
}
