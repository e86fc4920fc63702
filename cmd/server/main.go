package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"book-reader-server/internal/config"
	"book-reader-server/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Wiring
	container, err := config.NewContainer(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Handlers
	userHandler := handler.NewUserHandler(container.UserService, container.Logger)
	documentHandler := handler.NewDocumentHandler(
		container.DocumentService,
		container.Logger,
		container.Config.GetMaxFileSize(),
	)
	speechHandler := handler.NewSpeechHandler(container.SpeechService, container.Logger)

	apiKeyMiddleware := handler.APIKeyMiddleware(container.Config.GetAPIKey(), container.Logger)

	// Router
	router := handler.NewRouter(
		userHandler,
		documentHandler,
		speechHandler,
		apiKeyMiddleware,
		container.Config.GetAllowedOrigins(),
	)

	server := &http.Server{
		Addr:    ":" + container.Config.GetServerPort(),
		Handler: router,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	_ = server.Close()
	if err := container.Close(); err != nil {
		container.Logger.Error("Failed to drain database pool", err)
	}

	container.Logger.Info("Server exited")
}
