// Package v1 provides the HTTP handlers for the chatbot API.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/chatbot/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers all routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Session lifecycle
	e.POST("/chat/session", h.CreateSession)
	e.PUT("/chat/session/:id/rename", h.RenameSession)
	e.PUT("/chat/session/:id/favorite", h.SetFavorite)
	e.DELETE("/chat/session/:id", h.DeleteSession)

	// Messages
	e.POST("/chat/session/messages", h.SendMessage)
	e.GET("/chat/session/messages/:session_id", h.GetSessionMessages)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
