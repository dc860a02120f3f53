package ports

import (
	"context"
	"time"

	"github.com/ticketera/queue-admin-backend/internal/core/domain"
)

// DefaultReportDays is the trailing window applied when the caller supplies
// no usable days parameter.
const DefaultReportDays = 30

// StatisticsService defines the read-only report builders. Each call issues
// a fixed sequence of independent aggregate queries and merges the results;
// no report depends on another and no mutation occurs in read paths.
type StatisticsService interface {
	DashboardReport(ctx context.Context) (*domain.DashboardReport, error)
	TicketReport(ctx context.Context, days int) (*domain.TicketReport, error)
	UserReport(ctx context.Context) (*domain.UserReport, error)
	AttentionPointReport(ctx context.Context) (*domain.AttentionPointReport, error)
}

// LifecycleResult reports how many publicity rows each pass mutated.
type LifecycleResult struct {
	Deactivated int64
	Activated   int64
}

// PublicityService defines the publicity lifecycle operations and the
// active-banner read surface. The lifecycle operations are idempotent:
// a repeated invocation with the same today mutates zero additional rows.
type PublicityService interface {
	DeactivateExpired(ctx context.Context, today time.Time) (int64, error)
	ActivateDue(ctx context.Context, today time.Time) (int64, error)
	RunLifecycle(ctx context.Context, today time.Time) (LifecycleResult, error)
	ListActive(ctx context.Context, today time.Time) ([]*domain.Publicity, error)
}
