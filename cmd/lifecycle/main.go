// Command lifecycle runs one pass of the publicity lifecycle and exits.
// It is intended to be invoked from cron or a scheduled job runner.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ticketera/queue-admin-backend/internal/adapters/secondary/postgres"
	"github.com/ticketera/queue-admin-backend/internal/config"
	"github.com/ticketera/queue-admin-backend/internal/core/services"
	"github.com/ticketera/queue-admin-backend/internal/infrastructure/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Output:      os.Stdout,
		ServiceName: cfg.App.Name + "-lifecycle",
		Environment: cfg.App.Environment,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	publicityService := services.NewPublicityService(postgres.NewPublicityRepository(pool), logger)

	result, err := publicityService.RunLifecycle(ctx, time.Now().UTC())
	if err != nil {
		logger.Error("lifecycle run failed", "error", err)
		os.Exit(1)
	}

	logger.Info("lifecycle run complete",
		"deactivated", result.Deactivated,
		"activated", result.Activated,
	)
}
