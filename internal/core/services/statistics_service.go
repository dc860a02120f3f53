package services

import (
	"context"
	"math"
	"time"

	"github.com/ticketera/queue-admin-backend/internal/core/domain"
	apperrors "github.com/ticketera/queue-admin-backend/internal/core/errors"
	"github.com/ticketera/queue-admin-backend/internal/core/ports"
)

// mostActiveLimit bounds the most-active and most-recent user rankings.
const mostActiveLimit = 5

type StatisticsService struct {
	repo ports.StatisticsRepository
}

var _ ports.StatisticsService = (*StatisticsService)(nil)

func NewStatisticsService(repo ports.StatisticsRepository) ports.StatisticsService {
	return &StatisticsService{repo: repo}
}

// DashboardReport assembles the composite dashboard figures. Each figure is
// an independent query; totals and breakdowns may be minutely inconsistent
// under concurrent writes.
func (s *StatisticsService) DashboardReport(ctx context.Context) (*domain.DashboardReport, error) {
	now := time.Now().UTC()

	totalUsers, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	totalTickets, err := s.repo.CountTickets(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	totalPoints, err := s.repo.CountAttentionPoints(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	totalPublicity, err := s.repo.CountPublicity(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	usersByRole, err := s.repo.UsersByRole(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	ticketsByStatus, err := s.repo.TicketsByStatus(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	ticketsByPriority, err := s.repo.TicketsByPriority(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	availability, err := s.repo.AttentionPointAvailability(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	recentTickets, err := s.repo.CountTicketsSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	ticketsToday, err := s.repo.CountTicketsOn(ctx, now)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	activePublicity, err := s.repo.CountActivePublicity(ctx, now)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	priorityUsers, err := s.repo.CountPriorityUsers(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	return &domain.DashboardReport{
		Summary: domain.DashboardSummary{
			TotalUsers:           totalUsers,
			TotalTickets:         totalTickets,
			TotalAttentionPoints: totalPoints,
			TotalPublicity:       totalPublicity,
			RecentTickets:        recentTickets,
			TicketsToday:         ticketsToday,
			ActivePublicity:      activePublicity,
			PriorityUsers:        priorityUsers,
		},
		UsersByRole:       usersByRole,
		TicketsByStatus:   ticketsByStatus,
		TicketsByPriority: ticketsByPriority,
		AttentionPoints:   availability,
	}, nil
}

// TicketReport assembles ticket statistics for the trailing window
// [now - days, now]. A negative days falls back to the default window;
// days == 0 degenerates to the current instant.
func (s *StatisticsService) TicketReport(ctx context.Context, days int) (*domain.TicketReport, error) {
	if days < 0 {
		days = ports.DefaultReportDays
	}

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -days)

	total, err := s.repo.CountTicketsSince(ctx, since)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	byStatus, err := s.repo.TicketsByStatusSince(ctx, since)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	overTime, err := s.repo.TicketsPerDay(ctx, since)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	byHour, err := s.repo.TicketsPerHour(ctx, now)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	avgResolution, err := s.repo.AverageResolutionHours(ctx, since)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	distribution, err := s.repo.TicketsByUserPriority(ctx, since)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	mostActive, err := s.repo.MostActiveUsers(ctx, since, mostActiveLimit)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	perPoint, err := s.repo.TicketsPerAttentionPoint(ctx, since)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	return &domain.TicketReport{
		Days:                 days,
		TotalInPeriod:        total,
		ByStatus:             byStatus,
		OverTime:             overTime,
		ByHour:               byHour,
		AvgResolutionHours:   avgResolution,
		UserTypeDistribution: distribution,
		MostActiveUsers:      mostActive,
		PerAttentionPoint:    perPoint,
	}, nil
}

// UserReport assembles user statistics. The registrations series covers the
// trailing 30 days; the activity split is unwindowed.
func (s *StatisticsService) UserReport(ctx context.Context) (*domain.UserReport, error) {
	now := time.Now().UTC()

	byRole, err := s.repo.UsersByRole(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	overTime, err := s.repo.UsersJoinedPerDay(ctx, now.AddDate(0, 0, -ports.DefaultReportDays))
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	priorityUsers, err := s.repo.CountPriorityUsers(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	regularUsers, err := s.repo.CountRegularUsers(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	recentUsers, err := s.repo.MostRecentUsers(ctx, mostActiveLimit)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	activity, err := s.repo.UserActivity(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	return &domain.UserReport{
		ByRole:   byRole,
		OverTime: overTime,
		PriorityDistribution: domain.PriorityDistribution{
			PriorityUsers: priorityUsers,
			RegularUsers:  regularUsers,
		},
		RecentUsers: recentUsers,
		Activity:    activity,
	}, nil
}

// AttentionPointReport assembles attention point utilization, per-point
// detail, and per-point performance. The detail list includes every point;
// the performance list omits points with zero closed tickets.
func (s *StatisticsService) AttentionPointReport(ctx context.Context) (*domain.AttentionPointReport, error) {
	availability, err := s.repo.AttentionPointAvailability(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	detail, err := s.repo.AttentionPointDetail(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	performance, err := s.repo.AttentionPointPerformance(ctx)
	if err != nil {
		return nil, apperrors.NewAggregationError(err)
	}

	return &domain.AttentionPointReport{
		Utilization: domain.UtilizationSummary{
			TotalPoints:     availability.Total,
			AvailablePoints: availability.Available,
			OccupiedPoints:  availability.Occupied,
			UtilizationRate: utilizationRate(availability.Occupied, availability.Total),
		},
		Detail:      detail,
		Performance: performance,
	}, nil
}

// utilizationRate returns occupied/total*100 rounded to two decimal places,
// and 0 when there are no points at all.
func utilizationRate(occupied, total int64) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(occupied) / float64(total) * 100
	return math.Round(rate*100) / 100
}
