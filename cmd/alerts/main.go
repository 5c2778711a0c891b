package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dvcwatch/availability-alerts/internal/di"
	alertService "github.com/dvcwatch/availability-alerts/internal/modules/alert/service"
	"github.com/dvcwatch/availability-alerts/internal/shared/config"
	httpServer "github.com/dvcwatch/availability-alerts/internal/transport/http"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
)

func main() {
	// Setup structured logging with multiple handlers using slog-multi
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})

	// Use Fanout to send logs to both handlers
	multiHandler := slogmulti.Fanout(textHandler, jsonHandler)
	logger := slog.New(multiHandler)
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		slog.Error("Usage: alerts <config-file>")
		os.Exit(2)
	}
	configPath := os.Args[1]

	// Setup dependency injection
	injector, err := di.Setup(configPath)
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := di.Shutdown(injector); err != nil {
			slog.Error("Error during shutdown", "error", err)
		}
	}()

	// Get services from DI container
	cfg := do.MustInvoke[*config.Config](injector)
	alerts := do.MustInvoke[*alertService.Service](injector)
	server := do.MustInvoke[*httpServer.Server](injector)

	// Start the polling loop
	alerts.Start(context.Background())

	// Start the change feed server
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("Failed to start feed server", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Availability alerts started",
		"alerts", len(cfg.Alerts),
		"poll_interval", cfg.PollInterval,
		"port", cfg.HTTPPort)
	slog.Info("Press Ctrl+C to stop")

	// Graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	<-ctx.Done()
	slog.Info("Shutting down...")
}
