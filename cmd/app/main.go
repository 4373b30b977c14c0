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

	"orderintake/cmd"
	"orderintake/internal/adapters/out/postgres"
	"orderintake/internal/adapters/out/postgres/migrations"
	"orderintake/internal/adapters/out/rulesfile"
	"orderintake/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	level, _ := config.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config, logger); err != nil {
		logger.Error("order intake service stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, config cmd.Config, logger *slog.Logger) error {
	connection := config.Connection()

	if err := migrations.Up(connection.DSN()); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	db, err := postgres.Open(ctx, connection)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := postgres.Close(db); closeErr != nil {
			logger.Warn("failed to close database", "error", closeErr)
		}
	}()

	rules, err := rulesfile.Load(config.RulesFile)
	if err != nil {
		return fmt.Errorf("load courier rules: %w", err)
	}

	app, err := cmd.NewCompositionRoot(config, db, rules, logger)
	if err != nil {
		return err
	}

	e, jobManager, err := startServices(&app)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening",
			"address", config.Address(),
			"rules", rules.Len(),
			"status_transitions", config.StatusTransitions,
		)
		if startErr := e.Start(config.Address()); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			serveErr <- startErr
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err = <-serveErr:
		if err != nil {
			err = fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Warn("http server shutdown", "error", shutdownErr)
	}
	jobManager.StopAll(shutdownCtx)

	return err
}

// startServices builds the HTTP server before any job is scheduled, so a failed build
// leaves nothing running.
func startServices(app *cmd.CompositionRoot) (*echo.Echo, *jobs.JobManager, error) {
	e, err := app.CreateHTTPServer()
	if err != nil {
		return nil, nil, err
	}
	e.HideBanner = true

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return nil, nil, err
	}

	return e, jobManager, nil
}
