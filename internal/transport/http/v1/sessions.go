package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/chatbot/internal/domain"
)

// SessionRequest is the body for session create and rename.
type SessionRequest struct {
	Name string `json:"name"`
}

// CreateSession creates a new chat session.
// POST /chat/session
func (h *Handler) CreateSession(c echo.Context) error {
	var req SessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}

	view, err := h.service.CreateSession(c.Request().Context(), req.Name)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, view)
}

// RenameSession changes a session's display name.
// PUT /chat/session/:id/rename
func (h *Handler) RenameSession(c echo.Context) error {
	var req SessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}

	view, err := h.service.RenameSession(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// SetFavorite sets a session's favorite flag.
// PUT /chat/session/:id/favorite?favorite=bool
func (h *Handler) SetFavorite(c echo.Context) error {
	favorite, err := strconv.ParseBool(c.QueryParam("favorite"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "favorite must be a boolean"})
	}

	view, err := h.service.SetFavorite(c.Request().Context(), c.Param("id"), favorite)
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// DeleteSession deletes a session and all of its messages.
// DELETE /chat/session/:id
func (h *Handler) DeleteSession(c echo.Context) error {
	if err := h.service.DeleteSession(c.Request().Context(), c.Param("id")); err != nil {
		return h.sessionError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) sessionError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrSessionNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
