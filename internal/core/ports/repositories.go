package ports

import (
	"context"
	"time"

	"github.com/ticketera/queue-admin-backend/internal/core/domain"
)

// StatisticsRepository is the query port the aggregation service reads from.
// Every method is one independent aggregate query; the data store may be
// concurrently mutated between calls, so cross-method consistency within a
// single report is not guaranteed.
type StatisticsRepository interface {
	// Users
	CountUsers(ctx context.Context) (int64, error)
	CountPriorityUsers(ctx context.Context) (int64, error)
	CountRegularUsers(ctx context.Context) (int64, error)
	UsersByRole(ctx context.Context) ([]domain.RoleCount, error)
	UsersJoinedPerDay(ctx context.Context, since time.Time) ([]domain.DatePoint, error)
	MostRecentUsers(ctx context.Context, limit int) ([]domain.RecentUser, error)
	UserActivity(ctx context.Context) (domain.UserActivity, error)

	// Tickets
	CountTickets(ctx context.Context) (int64, error)
	CountTicketsSince(ctx context.Context, since time.Time) (int64, error)
	CountTicketsOn(ctx context.Context, day time.Time) (int64, error)
	TicketsByStatus(ctx context.Context) ([]domain.StatusCount, error)
	TicketsByStatusSince(ctx context.Context, since time.Time) ([]domain.StatusCount, error)
	TicketsByPriority(ctx context.Context) ([]domain.PriorityCount, error)
	TicketsPerDay(ctx context.Context, since time.Time) ([]domain.DatePoint, error)
	TicketsPerHour(ctx context.Context, day time.Time) ([]domain.HourPoint, error)
	AverageResolutionHours(ctx context.Context, since time.Time) (*float64, error)
	TicketsByUserPriority(ctx context.Context, since time.Time) (domain.UserTypeDistribution, error)
	MostActiveUsers(ctx context.Context, since time.Time, limit int) ([]domain.ActiveUser, error)
	TicketsPerAttentionPoint(ctx context.Context, since time.Time) ([]domain.AttentionPointLoad, error)

	// Attention points
	CountAttentionPoints(ctx context.Context) (int64, error)
	AttentionPointAvailability(ctx context.Context) (domain.AttentionPointBreakdown, error)
	AttentionPointDetail(ctx context.Context) ([]domain.AttentionPointDetail, error)
	AttentionPointPerformance(ctx context.Context) ([]domain.AttentionPointPerformance, error)

	// Publicity
	CountPublicity(ctx context.Context) (int64, error)
	CountActivePublicity(ctx context.Context, today time.Time) (int64, error)
}

// PublicityRepository is the port for publicity reads and the lifecycle
// bulk updates. Each bulk update is a single atomic statement.
type PublicityRepository interface {
	DeactivateExpired(ctx context.Context, today time.Time) (int64, error)
	ActivateDue(ctx context.Context, today time.Time) (int64, error)
	ListActive(ctx context.Context, today time.Time) ([]*domain.Publicity, error)
}
