package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campora/api/routes"
	"campora/internal/shared/config"
	"campora/internal/shared/database"
	"campora/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()
	appLogger := logger.New()
	logger.SetDefault(appLogger)

	db, err := database.New(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize databases", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.Upload.Path, 0o755); err != nil {
		appLogger.Error("Failed to create upload directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router, deps, err := routes.Setup(cfg, db, appLogger)
	if err != nil {
		appLogger.Error("Failed to set up routes", slog.String("error", err.Error()))
		db.Close()
		os.Exit(1)
	}

	// Background components
	ctx, cancel := context.WithCancel(context.Background())
	go deps.Hub.Run(ctx)
	deps.NotificationService.Start(ctx)
	deps.CompletionJob.Start(ctx)

	server := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("Server starting",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("mode", cfg.GinMode),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}

	deps.CompletionJob.Stop()
	deps.NotificationService.Stop()
	cancel()

	if err := db.Close(); err != nil {
		appLogger.Error("Failed to close databases", slog.String("error", err.Error()))
	}

	appLogger.Info("Server exited")
}
