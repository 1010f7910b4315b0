// Package config provides configuration for the chatbot backend.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Static API key required on protected routes (X-API-KEY header).
	APIKey string

	// Groq completion API settings
	GroqAPIURL      string
	GroqAPIKey      string
	GroqModel       string
	GroqTemperature float64
	LLMTimeout      time.Duration

	// Per-IP rate limit settings
	RateCapacity     int
	RateRefillTokens int
	RateRefillPeriod time.Duration
}

// Load loads configuration from environment variables with defaults.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("DATABASE_URL", "file:chatbot.db?cache=shared&mode=rwc")
	v.SetDefault("API_KEY", "")
	v.SetDefault("GROQ_API_URL", "https://api.groq.com/openai/v1/chat/completions")
	v.SetDefault("GROQ_API_KEY", "")
	v.SetDefault("GROQ_MODEL", "allam-2-7b")
	v.SetDefault("GROQ_TEMPERATURE", 0.7)
	v.SetDefault("LLM_TIMEOUT_MS", 30000)
	v.SetDefault("RATE_CAPACITY", 5)
	v.SetDefault("RATE_REFILL_TOKENS", 5)
	v.SetDefault("RATE_REFILL_PERIOD_SECONDS", 60)

	return &Config{
		HTTPPort:         v.GetInt("HTTP_PORT"),
		DatabaseURL:      v.GetString("DATABASE_URL"),
		APIKey:           v.GetString("API_KEY"),
		GroqAPIURL:       v.GetString("GROQ_API_URL"),
		GroqAPIKey:       v.GetString("GROQ_API_KEY"),
		GroqModel:        v.GetString("GROQ_MODEL"),
		GroqTemperature:  v.GetFloat64("GROQ_TEMPERATURE"),
		LLMTimeout:       time.Duration(v.GetInt("LLM_TIMEOUT_MS")) * time.Millisecond,
		RateCapacity:     v.GetInt("RATE_CAPACITY"),
		RateRefillTokens: v.GetInt("RATE_REFILL_TOKENS"),
		RateRefillPeriod: time.Duration(v.GetInt("RATE_REFILL_PERIOD_SECONDS")) * time.Second,
	}
}
