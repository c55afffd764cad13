package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"error-demo/internal/app"
	"error-demo/internal/config"
	"error-demo/internal/domain"
	"error-demo/internal/handler"
	"error-demo/internal/logger"
	"error-demo/internal/repository"
	"error-demo/internal/service/user"
)

func main() {
	// Bootstrap logger, replaced once the configuration is loaded
	log := logger.NewLogger("error-demo", "info", "json", false)
	defer func() {
		_ = log.Sync()
	}()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}

	// Override config from environment variables for Docker
	if port := os.Getenv("SERVER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			log.Fatal("Invalid SERVER_PORT", zap.String("value", port), zap.Error(err))
		}
		cfg.Server.Port = p
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logger.Level = level
	}

	log = logger.NewLogger("error-demo", cfg.Logger.Level, cfg.Logger.Encoding, cfg.Logger.Development)

	// Seed the immutable user directory
	directory := repository.NewUserDirectory(domain.SeedUsers())

	// Initialize services
	userService := user.NewService(directory)

	// Initialize handlers
	appHandler := handler.NewAppHandler(userService, log)
	healthHandler := handler.NewHealthHandler()
	docsHandler := handler.NewDocsHandler("openapi.yml")

	// Initialize and start HTTP server
	server := app.NewServer(cfg, log, appHandler, healthHandler, docsHandler)

	// Start server in goroutine
	go func() {
		log.Info("Starting HTTP server", zap.Int("port", cfg.Server.Port))
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server stopped")
}
