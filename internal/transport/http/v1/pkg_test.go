package v1

import (
	"context"
	"testing"

	"github.com/xiaot623/chatbot/internal/repository"
	"github.com/xiaot623/chatbot/internal/service"
	"github.com/xiaot623/chatbot/tests/helpers"
)

// stubGateway replaces the Groq client in handler tests.
type stubGateway struct {
	reply string
}

func (g stubGateway) Ask(ctx context.Context, text string) string {
	return g.reply
}

func newTestHandler(t *testing.T) (*Handler, store.Store) {
	t.Helper()
	db := helpers.NewTestSQLiteStore(t)
	svc := service.New(db, stubGateway{reply: "stub reply"})
	return NewHandler(svc), db
}

func newTestHandlerWithGateway(t *testing.T, gw service.Gateway) (*Handler, store.Store) {
	t.Helper()
	db := helpers.NewTestSQLiteStore(t)
	svc := service.New(db, gw)
	return NewHandler(svc), db
}
