package cmd

import (
	"context"
	"fmt"

	"scorekeeper/config"
	"scorekeeper/database"
	"scorekeeper/repository"
	"scorekeeper/service"
	"scorekeeper/web"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	// Load configuration
	cfg := config.Get()

	if cfg.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	}
	log.WithField("environment", cfg.Environment).Info("Starting scorekeeper")

	// Initialize database connection
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Info("Database connection established")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	scoreRepo := repository.NewScoreRepository(db)

	// Initialize services
	accountService := service.NewAccountService(userRepo)
	sessionService := service.NewSessionService(sessionRepo, userRepo, cfg.SessionTTL)
	scoreService := service.NewScoreService(scoreRepo)

	// Initialize HTTP server
	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	handler := web.NewHandler(accountService, sessionService, scoreService, renderer)
	server := web.NewServer(cfg.ServerAddr, handler)

	// Serve until the shutdown signal cancels the context
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
