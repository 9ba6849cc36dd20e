package dto

import "time"

// SessionResponse é devolvido ao abrir uma sessão de chat
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
