package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xiaot623/chatbot/internal/domain"
)

// SessionView is the session representation returned to clients.
type SessionView struct {
	SessionID string `json:"sessionId"`
	Name      string `json:"name"`
	Favorite  bool   `json:"favorite"`
}

func sessionView(s *domain.Session) *SessionView {
	return &SessionView{
		SessionID: s.SessionID,
		Name:      s.Name,
		Favorite:  s.Favorite,
	}
}

// CreateSession creates a session with a fresh identifier and the given name.
func (s *Service) CreateSession(ctx context.Context, name string) (*SessionView, error) {
	session := &domain.Session{
		SessionID: uuid.New().String(),
		Name:      name,
		Favorite:  false,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	log.Printf("Created new chat session %s", session.SessionID)
	return sessionView(session), nil
}

// RenameSession changes the display name of an existing session.
func (s *Service) RenameSession(ctx context.Context, sessionID, newName string) (*SessionView, error) {
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Name = newName
	if err := s.store.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	log.Printf("Renamed session %s to %q", sessionID, newName)
	return sessionView(session), nil
}

// SetFavorite sets the favorite flag of an existing session.
func (s *Service) SetFavorite(ctx context.Context, sessionID string, favorite bool) (*SessionView, error) {
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Favorite = favorite
	if err := s.store.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	log.Printf("Set favorite flag of session %s to %v", sessionID, favorite)
	return sessionView(session), nil
}

// DeleteSession deletes a session and all of its messages. The store
// performs both deletions in one transaction, messages first.
func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := s.findSession(ctx, sessionID); err != nil {
		return err
	}
	if err := s.store.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	log.Printf("Deleted session %s and its messages", sessionID)
	return nil
}

func (s *Service) findSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}
