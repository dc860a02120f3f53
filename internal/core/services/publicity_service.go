package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/ticketera/queue-admin-backend/internal/core/domain"
	"github.com/ticketera/queue-admin-backend/internal/core/ports"
)

type PublicityService struct {
	repo   ports.PublicityRepository
	logger *slog.Logger
}

var _ ports.PublicityService = (*PublicityService)(nil)

func NewPublicityService(repo ports.PublicityRepository, logger *slog.Logger) ports.PublicityService {
	return &PublicityService{
		repo:   repo,
		logger: logger.With("service", "publicity"),
	}
}

// DeactivateExpired flips is_active off for every banner whose window closed
// before today. Storage errors propagate uncaught to the scheduler.
func (s *PublicityService) DeactivateExpired(ctx context.Context, today time.Time) (int64, error) {
	return s.repo.DeactivateExpired(ctx, today)
}

// ActivateDue flips is_active on for every inactive banner whose window
// contains today.
func (s *PublicityService) ActivateDue(ctx context.Context, today time.Time) (int64, error) {
	return s.repo.ActivateDue(ctx, today)
}

// RunLifecycle runs the deactivation pass before the activation pass.
// Order is not required for correctness over multiple runs, but running
// deactivation first avoids a one-tick flicker when a window is empty.
func (s *PublicityService) RunLifecycle(ctx context.Context, today time.Time) (ports.LifecycleResult, error) {
	deactivated, err := s.repo.DeactivateExpired(ctx, today)
	if err != nil {
		return ports.LifecycleResult{}, err
	}

	activated, err := s.repo.ActivateDue(ctx, today)
	if err != nil {
		return ports.LifecycleResult{Deactivated: deactivated}, err
	}

	s.logger.Info("publicity lifecycle run complete",
		"today", today.Format("2006-01-02"),
		"deactivated", deactivated,
		"activated", activated,
	)

	return ports.LifecycleResult{Deactivated: deactivated, Activated: activated}, nil
}

// ListActive returns the banners currently inside their window with
// is_active set, for the storefront display.
func (s *PublicityService) ListActive(ctx context.Context, today time.Time) ([]*domain.Publicity, error) {
	return s.repo.ListActive(ctx, today)
}
