// Package domain defines the core domain models for the chatbot backend.
package domain

import "time"

// Role identifies the author of a message turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Session represents a named conversation thread.
type Session struct {
	SessionID string    `json:"session_id"`
	Name      string    `json:"name"`
	Favorite  bool      `json:"favorite"`
	CreatedAt time.Time `json:"created_at"`
}

// Message represents a single turn in a session's history.
// Messages are immutable once written; ordering is by CreatedAt with
// the auto-increment ID as tie-breaker.
type Message struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"session_id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
