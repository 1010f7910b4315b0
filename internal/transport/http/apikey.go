package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/chatbot/policy"
)

// APIKeyHeader is the header carrying the static API key.
const APIKeyHeader = "X-API-KEY"

// APIKey returns middleware enforcing the static API key on protected
// routes. Routes the access policy marks public pass through; a policy
// evaluation failure fails closed.
func APIKey(key string, engine *policy.Engine) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			public, err := engine.IsPublic(req.Context(), policy.AccessInput{
				Path:   req.URL.Path,
				Method: req.Method,
			})
			if err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "policy evaluation failed"})
			}
			if public {
				return next(c)
			}

			provided := req.Header.Get(APIKeyHeader)
			if provided == "" || provided != key {
				return c.String(http.StatusUnauthorized, "Unauthorized")
			}
			return next(c)
		}
	}
}
