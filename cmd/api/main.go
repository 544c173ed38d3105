package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redmonkez12/community-feed/internal/auth"
	"github.com/redmonkez12/community-feed/internal/config"
	"github.com/redmonkez12/community-feed/internal/logging"
	"github.com/redmonkez12/community-feed/internal/user"
	"github.com/redmonkez12/community-feed/internal/web"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	// Initialize the in-memory user directory.
	// State lives only for the lifetime of this process.
	users := user.NewDirectory()

	// Initialize PASETO session service
	tokenService, err := auth.NewPasetoService(cfg.Session.SigningKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session service: %w", err)
	}

	// Initialize session gate
	sessionGate := auth.NewMiddleware(tokenService, users)

	// Initialize page renderer
	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}

	// Initialize HTTP handlers
	handler := web.NewHandler(
		users,
		tokenService,
		renderer,
		logger,
		!cfg.Server.IsDevelopment(), // isProduction
		cfg.Session.Lifetime,
	)

	// Initialize router
	router := web.NewRouter(cfg, handler, sessionGate, logger)

	// Initialize HTTP server
	serverAddr := ":" + cfg.Server.Port
	server := web.NewServer(
		serverAddr,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Printf("Received signal: %v", sig)

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}
