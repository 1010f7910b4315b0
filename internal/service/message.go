package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/xiaot623/chatbot/internal/domain"
)

// DefaultPageSize is used when the caller requests a non-positive size.
const DefaultPageSize = 10

// MessageView is the message representation returned to clients.
type MessageView struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
	Role      string `json:"role"`
}

// MessagesPage is the pagination envelope for a session's history.
type MessagesPage struct {
	Data          []MessageView `json:"data"`
	TotalElements int64         `json:"totalElements"`
	TotalPages    int           `json:"totalPages"`
	CurrentPage   int           `json:"currentPage"`
	IsFirst       bool          `json:"isFirst"`
	IsLast        bool          `json:"isLast"`
	HasNext       bool          `json:"hasNext"`
	HasPrevious   bool          `json:"hasPrevious"`
}

// SendMessage persists the user turn, asks the gateway for a reply, and
// persists the assistant turn. Exactly two messages are written per
// successful call; a degraded gateway reply is persisted like any other.
// Nothing is written when the session does not exist.
func (s *Service) SendMessage(ctx context.Context, sessionID, userText string) (*MessageView, error) {
	if err := s.validateSession(ctx, sessionID); err != nil {
		return nil, err
	}

	if err := s.saveMessage(ctx, sessionID, userText, domain.RoleUser); err != nil {
		return nil, err
	}

	reply := s.gateway.Ask(ctx, userText)

	if err := s.saveMessage(ctx, sessionID, reply, domain.RoleAssistant); err != nil {
		return nil, err
	}

	log.Printf("Responded to session %s", sessionID)
	return &MessageView{
		SessionID: sessionID,
		Message:   reply,
		Role:      string(domain.RoleAssistant),
	}, nil
}

// ListMessages returns one page of a session's history in creation
// order. Pages are 1-indexed; any page below 1 means the first page.
func (s *Service) ListMessages(ctx context.Context, sessionID string, page, size int) (*MessagesPage, error) {
	if err := s.validateSession(ctx, sessionID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}

	total, err := s.store.CountMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	messages, err := s.store.ListMessages(ctx, sessionID, (page-1)*size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	data := make([]MessageView, 0, len(messages))
	for _, m := range messages {
		data = append(data, MessageView{
			SessionID: m.SessionID,
			Message:   m.Content,
			Role:      string(m.Role),
		})
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	isFirst := page == 1
	isLast := total == 0 || page >= totalPages

	return &MessagesPage{
		Data:          data,
		TotalElements: total,
		TotalPages:    totalPages,
		CurrentPage:   page,
		IsFirst:       isFirst,
		IsLast:        isLast,
		HasNext:       !isLast,
		HasPrevious:   !isFirst,
	}, nil
}

func (s *Service) saveMessage(ctx context.Context, sessionID, content string, role domain.Role) error {
	message := &domain.Message{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateMessage(ctx, message); err != nil {
		return fmt.Errorf("failed to save %s message: %w", role, err)
	}
	return nil
}

func (s *Service) validateSession(ctx context.Context, sessionID string) error {
	exists, err := s.store.SessionExists(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}
	if !exists {
		return domain.ErrSessionNotFound
	}
	return nil
}
