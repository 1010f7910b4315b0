// Package store defines the storage interface and the SQLite implementation.
package store

import (
	"context"

	"github.com/xiaot623/chatbot/internal/domain"
)

// Store defines the interface for data persistence.
type Store interface {
	// Session operations
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	UpdateSession(ctx context.Context, session *domain.Session) error
	DeleteSession(ctx context.Context, sessionID string) error
	SessionExists(ctx context.Context, sessionID string) (bool, error)

	// Message operations
	CreateMessage(ctx context.Context, message *domain.Message) error
	ListMessages(ctx context.Context, sessionID string, offset, limit int) ([]domain.Message, error)
	CountMessages(ctx context.Context, sessionID string) (int64, error)

	// Lifecycle
	Close() error
}
