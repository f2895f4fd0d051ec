// Package main implements the entry point for the StudyDeck API server,
// which turns free-form study notes into flashcards and practice questions
// via a hosted chat-completion deployment.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/studydeck/studydeck-api/internal/api"
	"github.com/studydeck/studydeck-api/internal/config"
	"github.com/studydeck/studydeck-api/internal/platform/logger"
	"github.com/studydeck/studydeck-api/internal/platform/openai"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run loads configuration, wires dependencies and serves HTTP until the
// process receives an interrupt or termination signal.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"deployment", cfg.LLM.Deployment)

	// One client for the process lifetime, shared by all in-flight requests.
	generator, err := openai.NewGenerator(appLogger, cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	pageHandler, err := api.NewPageHandler(appLogger)
	if err != nil {
		return fmt.Errorf("failed to create page handler: %w", err)
	}

	router := newRouter(appLogger, generator, pageHandler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
