package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lastmile/cmd"
	"lastmile/internal/pkg/telemetry"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger, err := newLogger(config)
	if err != nil {
		log.Fatalf("Error configuring logger: %v", err)
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, config.OTelEndpoint, config.AppName, config.AppVersion)
	if err != nil {
		log.Fatalf("Error configuring tracing: %v", err)
	}

	app, err := cmd.NewCompositionRoot(config, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	startWebServer(ctx, &app, config, logger)

	jobManager.StopAll()

	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = shutdownTracing(flushCtx); err != nil {
		logger.Error("tracing shutdown failed", "error", err)
	}
}

func newLogger(config cmd.Config) (*slog.Logger, error) {
	level, err := config.SlogLevel()
	if err != nil {
		return nil, err
	}

	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stdout, options)
	if config.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, options)
	}

	return slog.New(handler).With("service", config.AppName, "environment", config.Environment), nil
}

// startWebServer serves until ctx is cancelled, then drains in-flight
// requests.
func startWebServer(ctx context.Context, app *cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) {
	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	go func() {
		logger.Info("http server listening", "port", config.HTTPPort)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", startErr)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}
