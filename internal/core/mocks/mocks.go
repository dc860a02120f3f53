package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/ticketera/queue-admin-backend/internal/core/domain"
	"github.com/ticketera/queue-admin-backend/internal/core/ports"
)

// MockStatisticsRepository is a mock implementation of ports.StatisticsRepository
type MockStatisticsRepository struct {
	mock.Mock
}

func NewMockStatisticsRepository() *MockStatisticsRepository {
	return &MockStatisticsRepository{}
}

func (m *MockStatisticsRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatisticsRepository) CountPriorityUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatisticsRepository) CountRegularUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatisticsRepository) UsersByRole(ctx context.Context) ([]domain.RoleCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoleCount), args.Error(1)
}

func (m *MockStatisticsRepository) UsersJoinedPerDay(ctx context.Context, since time.Time) ([]domain.DatePoint, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DatePoint), args.Error(1)
}

func (m *MockStatisticsRepository) MostRecentUsers(ctx context.Context, limit int) ([]domain.RecentUser, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecentUser), args.Error(1)
}

func (m *MockStatisticsRepository) UserActivity(ctx context.Context) (domain.UserActivity, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.UserActivity), args.Error(1)
}

func (m *MockStatisticsRepository) CountTickets(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatisticsRepository) CountTicketsSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatisticsRepository) CountTicketsOn(ctx context.Context, day time.Time) (int64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatisticsRepository) TicketsByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCount), args.Error(1)
}

func (m *MockStatisticsRepository) TicketsByStatusSince(ctx context.Context, since time.Time) ([]domain.StatusCount, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusCount), args.Error(1)
}

func (m *MockStatisticsRepository) TicketsByPriority(ctx context.Context) ([]domain.PriorityCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriorityCount), args.Error(1)
}

func (m *MockStatisticsRepository) TicketsPerDay(ctx context.Context, since time.Time) ([]domain.DatePoint, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DatePoint), args.Error(1)
}

func (m *MockStatisticsRepository) TicketsPerHour(ctx context.Context, day time.Time) ([]domain.HourPoint, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HourPoint), args.Error(1)
}

func (m *MockStatisticsRepository) AverageResolutionHours(ctx context.Context, since time.Time) (*float64, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

func (m *MockStatisticsRepository) TicketsByUserPriority(ctx context.Context, since time.Time) (domain.UserTypeDistribution, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(domain.UserTypeDistribution), args.Error(1)
}

func (m *MockStatisticsRepository) MostActiveUsers(ctx context.Context, since time.Time, limit int) ([]domain.ActiveUser, error) {
	args := m.Called(ctx, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActiveUser), args.Error(1)
}

func (m *MockStatisticsRepository) TicketsPerAttentionPoint(ctx context.Context, since time.Time) ([]domain.AttentionPointLoad, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttentionPointLoad), args.Error(1)
}

func (m *MockStatisticsRepository) CountAttentionPoints(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatisticsRepository) AttentionPointAvailability(ctx context.Context) (domain.AttentionPointBreakdown, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AttentionPointBreakdown), args.Error(1)
}

func (m *MockStatisticsRepository) AttentionPointDetail(ctx context.Context) ([]domain.AttentionPointDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttentionPointDetail), args.Error(1)
}

func (m *MockStatisticsRepository) AttentionPointPerformance(ctx context.Context) ([]domain.AttentionPointPerformance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttentionPointPerformance), args.Error(1)
}

func (m *MockStatisticsRepository) CountPublicity(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatisticsRepository) CountActivePublicity(ctx context.Context, today time.Time) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

// MockPublicityRepository is a mock implementation of ports.PublicityRepository
type MockPublicityRepository struct {
	mock.Mock
}

func NewMockPublicityRepository() *MockPublicityRepository {
	return &MockPublicityRepository{}
}

func (m *MockPublicityRepository) DeactivateExpired(ctx context.Context, today time.Time) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPublicityRepository) ActivateDue(ctx context.Context, today time.Time) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPublicityRepository) ListActive(ctx context.Context, today time.Time) ([]*domain.Publicity, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Publicity), args.Error(1)
}

// MockStatisticsService is a mock implementation of ports.StatisticsService
type MockStatisticsService struct {
	mock.Mock
}

func NewMockStatisticsService() *MockStatisticsService {
	return &MockStatisticsService{}
}

func (m *MockStatisticsService) DashboardReport(ctx context.Context) (*domain.DashboardReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardReport), args.Error(1)
}

func (m *MockStatisticsService) TicketReport(ctx context.Context, days int) (*domain.TicketReport, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TicketReport), args.Error(1)
}

func (m *MockStatisticsService) UserReport(ctx context.Context) (*domain.UserReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserReport), args.Error(1)
}

func (m *MockStatisticsService) AttentionPointReport(ctx context.Context) (*domain.AttentionPointReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttentionPointReport), args.Error(1)
}

// MockPublicityService is a mock implementation of ports.PublicityService
type MockPublicityService struct {
	mock.Mock
}

func NewMockPublicityService() *MockPublicityService {
	return &MockPublicityService{}
}

func (m *MockPublicityService) DeactivateExpired(ctx context.Context, today time.Time) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPublicityService) ActivateDue(ctx context.Context, today time.Time) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPublicityService) RunLifecycle(ctx context.Context, today time.Time) (ports.LifecycleResult, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(ports.LifecycleResult), args.Error(1)
}

func (m *MockPublicityService) ListActive(ctx context.Context, today time.Time) ([]*domain.Publicity, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Publicity), args.Error(1)
}
