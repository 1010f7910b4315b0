package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/xiaot623/chatbot/policy"
)

const (
	rateLimiterCleanupInterval = 5 * time.Minute
	rateLimiterStaleThreshold  = 10 * time.Minute
)

// RateLimiter implements per-IP rate limiting using golang.org/x/time/rate.
// Cleanup of stale entries happens inline during Allow calls so the
// visitor table stays bounded.
type RateLimiter struct {
	mu          sync.Mutex
	visitors    map[string]*visitor
	limit       rate.Limit
	burst       int
	lastCleanup time.Time
}

// visitor holds a rate limiter and last-seen time for a single IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter allowing bursts up to capacity,
// refilled with refillTokens tokens every refillPeriod.
func NewRateLimiter(capacity, refillTokens int, refillPeriod time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors:    make(map[string]*visitor),
		limit:       rate.Limit(float64(refillTokens) / refillPeriod.Seconds()),
		burst:       capacity,
		lastCleanup: time.Now(),
	}
}

// Allow checks if a request from the given IP is allowed.
// Returns false if the IP has exhausted its tokens.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	// Periodic cleanup of stale entries
	if now.Sub(rl.lastCleanup) > rateLimiterCleanupInterval {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) > rateLimiterStaleThreshold {
				delete(rl.visitors, k)
			}
		}
		rl.lastCleanup = now
	}

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.limit, rl.burst)
		rl.visitors[ip] = &visitor{
			limiter:  limiter,
			lastSeen: now,
		}
		limiter.Allow()
		return true
	}

	v.lastSeen = now
	return v.limiter.Allow()
}

// RateLimit returns middleware that limits requests per client IP on
// protected routes. Public routes pass through unthrottled.
func RateLimit(rl *RateLimiter, engine *policy.Engine) echo.MiddlewareFunc {
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

			if !rl.Allow(c.RealIP()) {
				c.Response().Header().Set("Retry-After", "1")
				return c.String(http.StatusTooManyRequests, "Rate limit exceeded. Try again later.")
			}
			return next(c)
		}
	}
}
