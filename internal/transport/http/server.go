// Package http provides the HTTP server implementation for the chatbot backend.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/xiaot623/chatbot/internal/config"
	"github.com/xiaot623/chatbot/internal/service"
	"github.com/xiaot623/chatbot/internal/transport/http/v1"
	"github.com/xiaot623/chatbot/policy"
)

// NewServer creates and configures the HTTP server. All routes except
// the ones the access policy marks public sit behind the API-key check
// and the per-IP rate limiter.
func NewServer(svc *service.Service, engine *policy.Engine, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(APIKey(cfg.APIKey, engine))
	e.Use(RateLimit(NewRateLimiter(cfg.RateCapacity, cfg.RateRefillTokens, cfg.RateRefillPeriod), engine))

	// Handlers
	v1Handler := v1.NewHandler(svc)
	v1Handler.RegisterRoutes(e)

	return e
}
