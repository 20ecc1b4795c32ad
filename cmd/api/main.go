package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"task-manager/backend/internal/config"
	"task-manager/backend/internal/database"
	"task-manager/backend/internal/logger"
	"task-manager/backend/internal/routes"
)

func main() {
	if err := run(); err != nil {
		logger.Error(context.Background(), "Fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.AllowAllOrigins() {
		logger.Warn(context.Background(), "CORS allows every origin; set CORS_ALLOW_ORIGINS outside development")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	server := newServer(cfg, routes.SetupRouter(db, cfg))
	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "HTTP server listening", "port", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info(context.Background(), "Server stopped")
	return nil
}

func closeDatabase(db *gorm.DB) error {
	if err := database.Close(db); err != nil {
		logger.Error(context.Background(), "Failed to close database", "error", err)
		return err
	}
	return nil
}

func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
