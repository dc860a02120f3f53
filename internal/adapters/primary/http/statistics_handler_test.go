package http

import (
	"encoding/json"
	"io"
	"log/slog"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ticketera/queue-admin-backend/internal/core/domain"
	apperrors "github.com/ticketera/queue-admin-backend/internal/core/errors"
	"github.com/ticketera/queue-admin-backend/internal/core/mocks"
	"github.com/ticketera/queue-admin-backend/internal/core/ports"
)

func newStatisticsRouter(svc ports.StatisticsService) chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewStatisticsHandler(svc, NewErrorHandler(logger), logger, nil)

	r := chi.NewRouter()
	r.Route("/statistics", handler.RegisterRoutes)
	return r
}

func TestStatisticsDashboard(t *testing.T) {
	svc := new(mocks.MockStatisticsService)
	svc.On("DashboardReport", mock.Anything).Return(&domain.DashboardReport{
		Summary: domain.DashboardSummary{
			TotalUsers:   12,
			TotalTickets: 40,
			TicketsToday: 3,
		},
		UsersByRole: []domain.RoleCount{
			{Role: domain.RoleAdmin, Count: 2},
			{Role: domain.RoleClient, Count: 10},
		},
		TicketsByStatus: []domain.StatusCount{
			{Status: domain.StatusOpen, Count: 25},
			{Status: domain.StatusClosed, Count: 15},
		},
		AttentionPoints: domain.AttentionPointBreakdown{Available: 3, Occupied: 1, Total: 4},
	}, nil)

	router := newStatisticsRouter(svc)
	req := httptest.NewRequest(stdhttp.MethodGet, "/statistics/dashboard/", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, stdhttp.StatusOK, recorder.Code)

	var response dashboardResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))

	assert.Equal(t, int64(12), response.Summary.TotalUsers)
	assert.Equal(t, int64(3), response.Summary.TicketsToday)
	require.Len(t, response.UsersByRole, 2)
	assert.Equal(t, "admin", response.UsersByRole[0].Role)
	assert.Equal(t, int64(4), response.AttentionPoints.Total)
	svc.AssertExpectations(t)
}

func TestStatisticsTicketsDaysParam(t *testing.T) {
	report := func(days int) *domain.TicketReport {
		return &domain.TicketReport{Days: days, TotalInPeriod: 7}
	}

	tests := []struct {
		name         string
		query        string
		expectedDays int
	}{
		{name: "missing", query: "", expectedDays: ports.DefaultReportDays},
		{name: "explicit", query: "?days=7", expectedDays: 7},
		{name: "non integer falls back", query: "?days=abc", expectedDays: ports.DefaultReportDays},
		{name: "negative falls back", query: "?days=-5", expectedDays: ports.DefaultReportDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockStatisticsService)
			svc.On("TicketReport", mock.Anything, tt.expectedDays).Return(report(tt.expectedDays), nil)

			router := newStatisticsRouter(svc)
			req := httptest.NewRequest(stdhttp.MethodGet, "/statistics/tickets/"+tt.query, nil)
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)

			require.Equal(t, stdhttp.StatusOK, recorder.Code)

			var response ticketsResponse
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
			assert.Contains(t, response.TimePeriod, "days")
			assert.Equal(t, int64(7), response.TotalTicketsInPeriod)
			svc.AssertExpectations(t)
		})
	}
}

func TestStatisticsTicketsNullResolutionTime(t *testing.T) {
	svc := new(mocks.MockStatisticsService)
	svc.On("TicketReport", mock.Anything, ports.DefaultReportDays).Return(&domain.TicketReport{
		Days: ports.DefaultReportDays,
	}, nil)

	router := newStatisticsRouter(svc)
	req := httptest.NewRequest(stdhttp.MethodGet, "/statistics/tickets/", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, stdhttp.StatusOK, recorder.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&raw))
	assert.Equal(t, "null", string(raw["average_resolution_time_hours"]))
}

func TestStatisticsAggregationFailure(t *testing.T) {
	svc := new(mocks.MockStatisticsService)
	svc.On("UserReport", mock.Anything).Return(nil,
		apperrors.NewAggregationError(assert.AnError))

	router := newStatisticsRouter(svc)
	req := httptest.NewRequest(stdhttp.MethodGet, "/statistics/users/", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, stdhttp.StatusInternalServerError, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, assert.AnError.Error(), response.Error)
	assert.Equal(t, "AGGREGATION_FAILURE", response.Code)
}

func TestStatisticsUsers(t *testing.T) {
	joined := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)

	svc := new(mocks.MockStatisticsService)
	svc.On("UserReport", mock.Anything).Return(&domain.UserReport{
		ByRole: []domain.RoleCount{{Role: domain.RoleEmployee, Count: 4}},
		OverTime: []domain.DatePoint{
			{Date: time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), Count: 2},
		},
		PriorityDistribution: domain.PriorityDistribution{PriorityUsers: 1, RegularUsers: 3},
		RecentUsers: []domain.RecentUser{
			{FirstName: "Ana", LastName: "Ruiz", DNI: "11223344", Role: domain.RoleClient, DateJoined: joined},
		},
		Activity: domain.UserActivity{ActiveUsers: 3, InactiveUsers: 1},
	}, nil)

	router := newStatisticsRouter(svc)
	req := httptest.NewRequest(stdhttp.MethodGet, "/statistics/users/", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, stdhttp.StatusOK, recorder.Code)

	var response usersResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))

	require.Len(t, response.UsersOverTime, 1)
	assert.Equal(t, "2026-05-02", response.UsersOverTime[0].Date)
	require.Len(t, response.RecentUsers, 1)
	assert.Equal(t, "client", response.RecentUsers[0].Role)
	assert.Equal(t, int64(3), response.UserActivity.ActiveUsers)
}

func TestStatisticsAttentionPoints(t *testing.T) {
	svc := new(mocks.MockStatisticsService)
	svc.On("AttentionPointReport", mock.Anything).Return(&domain.AttentionPointReport{
		Utilization: domain.UtilizationSummary{
			TotalPoints:     3,
			AvailablePoints: 2,
			OccupiedPoints:  1,
			UtilizationRate: 33.33,
		},
		Detail: []domain.AttentionPointDetail{
			{AttentionPointID: 1, Availability: true},
			{AttentionPointID: 2, Availability: false, CurrentTickets: 2, TotalTicketsServed: 5, PendingTickets: 1},
			{AttentionPointID: 3, Availability: true},
		},
		Performance: []domain.AttentionPointPerformance{
			{AttentionPointID: 2, TicketsServed: 5, AvgResolutionHours: 1.5},
		},
	}, nil)

	router := newStatisticsRouter(svc)
	req := httptest.NewRequest(stdhttp.MethodGet, "/statistics/attention-points/", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, stdhttp.StatusOK, recorder.Code)

	var response attentionPointsResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))

	assert.Equal(t, 33.33, response.UtilizationSummary.UtilizationRate)
	assert.Len(t, response.AttentionPointsDetail, 3)
	assert.Len(t, response.PerformanceMetrics, 1)
}
