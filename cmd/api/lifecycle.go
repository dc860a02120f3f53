package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/ticketera/queue-admin-backend/internal/core/ports"
	"github.com/ticketera/queue-admin-backend/internal/infrastructure/metrics"
)

// runLifecycleScheduler runs the publicity lifecycle at a fixed interval
// until the context is cancelled. A run that fails is logged and retried on
// the next tick; each pass is idempotent so overlap with the standalone
// lifecycle binary is harmless.
func runLifecycleScheduler(ctx context.Context, svc ports.PublicityService, m *metrics.Metrics, logger *slog.Logger, interval time.Duration) {
	logger = logger.With("component", "lifecycle-scheduler")
	logger.Info("lifecycle scheduler started", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("lifecycle scheduler stopped")
			return
		case <-ticker.C:
			runCtx, cancel := context.WithTimeout(ctx, time.Minute)
			result, err := svc.RunLifecycle(runCtx, time.Now().UTC())
			cancel()

			m.LifecycleRuns.Inc()
			if err != nil {
				logger.Error("lifecycle run failed", "error", err)
				continue
			}

			m.LifecycleMutations.WithLabelValues("deactivate").Add(float64(result.Deactivated))
			m.LifecycleMutations.WithLabelValues("activate").Add(float64(result.Activated))
		}
	}
}
