package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/chatbot/internal/service"
)

// MessageRequest is the body for sending a message.
type MessageRequest struct {
	SessionID   string `json:"sessionId"`
	UserMessage string `json:"userMessage"`
}

// SendMessage stores a user turn, obtains the assistant reply, and
// stores it as the second turn.
// POST /chat/session/messages
func (h *Handler) SendMessage(c echo.Context) error {
	var req MessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.SessionID) == "" || strings.TrimSpace(req.UserMessage) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "sessionId and userMessage are required"})
	}

	view, err := h.service.SendMessage(c.Request().Context(), req.SessionID, req.UserMessage)
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// GetSessionMessages retrieves one page of a session's history.
// GET /chat/session/messages/:session_id?page=&size=
func (h *Handler) GetSessionMessages(c echo.Context) error {
	sessionID := c.Param("session_id")

	page := 1
	if p := c.QueryParam("page"); p != "" {
		if val, err := strconv.Atoi(p); err == nil {
			page = val
		}
	}
	size := service.DefaultPageSize
	if s := c.QueryParam("size"); s != "" {
		if val, err := strconv.Atoi(s); err == nil {
			size = val
		}
	}

	result, err := h.service.ListMessages(c.Request().Context(), sessionID, page, size)
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
