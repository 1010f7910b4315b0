// Package service implements the session and conversation business logic.
package service

import (
	"context"

	"github.com/xiaot623/chatbot/internal/repository"
)

// Gateway produces assistant replies for user messages. Implementations
// must always return a usable string, degrading to a fallback reply on
// failure rather than erroring.
type Gateway interface {
	Ask(ctx context.Context, text string) string
}

// Service owns the session lifecycle and conversation invariants.
type Service struct {
	store   store.Store
	gateway Gateway
}

// New creates a new service.
func New(store store.Store, gateway Gateway) *Service {
	return &Service{
		store:   store,
		gateway: gateway,
	}
}
