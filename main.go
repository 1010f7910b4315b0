package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xiaot623/chatbot/internal/adapter/llm"
	"github.com/xiaot623/chatbot/internal/config"
	"github.com/xiaot623/chatbot/internal/repository"
	"github.com/xiaot623/chatbot/internal/service"
	handler "github.com/xiaot623/chatbot/internal/transport/http"
	"github.com/xiaot623/chatbot/policy"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.Printf("Starting chatbot backend...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("Groq URL: %s", cfg.GroqAPIURL)

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Initialize Groq client
	llmClient := llm.NewClient(cfg.GroqAPIURL, cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqTemperature, cfg.LLMTimeout)

	// Initialize route-access policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize service
	svc := service.New(db, llmClient)

	// Create server
	server := handler.NewServer(svc, policyEngine, cfg)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Chatbot backend stopped")
}
