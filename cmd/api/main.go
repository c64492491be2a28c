package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/interview-ai/ai-service/internal/config"
	"github.com/interview-ai/ai-service/internal/router"
	"github.com/interview-ai/ai-service/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	evaluatorService := services.NewFixedEvaluatorService()
	log.Println("✅ Evaluator service initialized")

	app := router.New(cfg, evaluatorService)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	addr := cfg.Server.Address()
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
