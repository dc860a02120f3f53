package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ticketera/queue-admin-backend/internal/adapters/primary/validation"
	"github.com/ticketera/queue-admin-backend/internal/core/domain"
	"github.com/ticketera/queue-admin-backend/internal/core/ports"
	"github.com/ticketera/queue-admin-backend/internal/infrastructure/metrics"
)

const dateLayout = "2006-01-02"

type StatisticsHandler struct {
	statsService ports.StatisticsService
	errorHandler *ErrorHandler
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

func NewStatisticsHandler(statsService ports.StatisticsService, errorHandler *ErrorHandler, logger *slog.Logger, m *metrics.Metrics) *StatisticsHandler {
	return &StatisticsHandler{
		statsService: statsService,
		errorHandler: errorHandler,
		logger:       logger.With("handler", "statistics"),
		metrics:      m,
	}
}

// RegisterRoutes mounts the report endpoints. The trailing slashes are part
// of the public paths consumed by the admin frontend.
func (h *StatisticsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard/", h.HandleDashboard)
	r.Get("/tickets/", h.HandleTickets)
	r.Get("/users/", h.HandleUsers)
	r.Get("/attention-points/", h.HandleAttentionPoints)
}

type summaryDTO struct {
	TotalUsers           int64 `json:"total_users"`
	TotalTickets         int64 `json:"total_tickets"`
	TotalAttentionPoints int64 `json:"total_attention_points"`
	TotalPublicity       int64 `json:"total_publicity"`
	RecentTickets        int64 `json:"recent_tickets"`
	TicketsToday         int64 `json:"tickets_today"`
	ActivePublicity      int64 `json:"active_publicity"`
	PriorityUsers        int64 `json:"priority_users"`
}

type statusCountDTO struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type priorityCountDTO struct {
	Priority string `json:"priority"`
	Count    int64  `json:"count"`
}

type roleCountDTO struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

type datePointDTO struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type hourPointDTO struct {
	Hour  string `json:"hour"`
	Count int64  `json:"count"`
}

type attentionPointBreakdownDTO struct {
	Available int64 `json:"available"`
	Occupied  int64 `json:"occupied"`
	Total     int64 `json:"total"`
}

type dashboardResponse struct {
	Summary           summaryDTO                 `json:"summary"`
	UsersByRole       []roleCountDTO             `json:"users_by_role"`
	TicketsByStatus   []statusCountDTO           `json:"tickets_by_status"`
	TicketsByPriority []priorityCountDTO         `json:"tickets_by_priority"`
	AttentionPoints   attentionPointBreakdownDTO `json:"attention_points"`
}

type userTypeDistributionDTO struct {
	PriorityTickets int64 `json:"priority_tickets"`
	RegularTickets  int64 `json:"regular_tickets"`
}

type activeUserDTO struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DNI         string `json:"dni"`
	TicketCount int64  `json:"ticket_count"`
}

type attentionPointLoadDTO struct {
	AttentionPointID int64 `json:"attention_point_id"`
	TotalTickets     int64 `json:"total_tickets"`
	OpenTickets      int64 `json:"open_tickets"`
	InProgress       int64 `json:"in_progress"`
	ClosedTickets    int64 `json:"closed_tickets"`
}

type ticketsResponse struct {
	TimePeriod               string                  `json:"time_period"`
	TotalTicketsInPeriod     int64                   `json:"total_tickets_in_period"`
	TicketsByStatusPeriod    []statusCountDTO        `json:"tickets_by_status_period"`
	TicketsOverTime          []datePointDTO          `json:"tickets_over_time"`
	TicketsByHour            []hourPointDTO          `json:"tickets_by_hour"`
	AvgResolutionHours       *float64                `json:"average_resolution_time_hours"`
	UserTypeDistribution     userTypeDistributionDTO `json:"user_type_distribution"`
	MostActiveUsers          []activeUserDTO         `json:"most_active_users"`
	TicketsPerAttentionPoint []attentionPointLoadDTO `json:"tickets_per_attention_point"`
}

type priorityDistributionDTO struct {
	PriorityUsers int64 `json:"priority_users"`
	RegularUsers  int64 `json:"regular_users"`
}

type recentUserDTO struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	DNI        string `json:"dni"`
	Role       string `json:"role"`
	DateJoined string `json:"date_joined"`
}

type userActivityDTO struct {
	ActiveUsers   int64 `json:"active_users"`
	InactiveUsers int64 `json:"inactive_users"`
}

type usersResponse struct {
	UsersByRole          []roleCountDTO          `json:"users_by_role"`
	UsersOverTime        []datePointDTO          `json:"users_over_time"`
	PriorityDistribution priorityDistributionDTO `json:"priority_distribution"`
	RecentUsers          []recentUserDTO         `json:"recent_users"`
	UserActivity         userActivityDTO         `json:"user_activity"`
}

type utilizationSummaryDTO struct {
	TotalPoints     int64   `json:"total_points"`
	AvailablePoints int64   `json:"available_points"`
	OccupiedPoints  int64   `json:"occupied_points"`
	UtilizationRate float64 `json:"utilization_rate"`
}

type attentionPointDetailDTO struct {
	AttentionPointID   int64 `json:"attention_point_id"`
	Availability       bool  `json:"availability"`
	CurrentTickets     int64 `json:"current_tickets"`
	TotalTicketsServed int64 `json:"total_tickets_served"`
	PendingTickets     int64 `json:"pending_tickets"`
}

type attentionPointPerformanceDTO struct {
	AttentionPointID   int64   `json:"attention_point_id"`
	TicketsServed      int64   `json:"tickets_served"`
	AvgResolutionHours float64 `json:"avg_resolution_hours"`
}

type attentionPointsResponse struct {
	UtilizationSummary    utilizationSummaryDTO          `json:"utilization_summary"`
	AttentionPointsDetail []attentionPointDetailDTO      `json:"attention_points_detail"`
	PerformanceMetrics    []attentionPointPerformanceDTO `json:"performance_metrics"`
}

// HandleDashboard handles GET /statistics/dashboard/
func (h *StatisticsHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	report, err := h.statsService.DashboardReport(r.Context())
	h.observe("dashboard", start, err)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, toDashboardResponse(report))
}

// HandleTickets handles GET /statistics/tickets/?days=N
func (h *StatisticsHandler) HandleTickets(w http.ResponseWriter, r *http.Request) {
	days := validation.ParseIntQueryParam(r, "days", ports.DefaultReportDays)

	start := time.Now()
	report, err := h.statsService.TicketReport(r.Context(), days)
	h.observe("tickets", start, err)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, toTicketsResponse(report))
}

// HandleUsers handles GET /statistics/users/
func (h *StatisticsHandler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	report, err := h.statsService.UserReport(r.Context())
	h.observe("users", start, err)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, toUsersResponse(report))
}

// HandleAttentionPoints handles GET /statistics/attention-points/
func (h *StatisticsHandler) HandleAttentionPoints(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	report, err := h.statsService.AttentionPointReport(r.Context())
	h.observe("attention_points", start, err)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, toAttentionPointsResponse(report))
}

func (h *StatisticsHandler) observe(report string, start time.Time, err error) {
	if h.metrics != nil {
		h.metrics.ObserveReport(report, start, err)
	}
}

func toDashboardResponse(report *domain.DashboardReport) dashboardResponse {
	return dashboardResponse{
		Summary: summaryDTO{
			TotalUsers:           report.Summary.TotalUsers,
			TotalTickets:         report.Summary.TotalTickets,
			TotalAttentionPoints: report.Summary.TotalAttentionPoints,
			TotalPublicity:       report.Summary.TotalPublicity,
			RecentTickets:        report.Summary.RecentTickets,
			TicketsToday:         report.Summary.TicketsToday,
			ActivePublicity:      report.Summary.ActivePublicity,
			PriorityUsers:        report.Summary.PriorityUsers,
		},
		UsersByRole:       toRoleCountDTOs(report.UsersByRole),
		TicketsByStatus:   toStatusCountDTOs(report.TicketsByStatus),
		TicketsByPriority: toPriorityCountDTOs(report.TicketsByPriority),
		AttentionPoints: attentionPointBreakdownDTO{
			Available: report.AttentionPoints.Available,
			Occupied:  report.AttentionPoints.Occupied,
			Total:     report.AttentionPoints.Total,
		},
	}
}

func toTicketsResponse(report *domain.TicketReport) ticketsResponse {
	users := make([]activeUserDTO, 0, len(report.MostActiveUsers))
	for _, u := range report.MostActiveUsers {
		users = append(users, activeUserDTO{
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			DNI:         u.DNI,
			TicketCount: u.TicketCount,
		})
	}

	loads := make([]attentionPointLoadDTO, 0, len(report.PerAttentionPoint))
	for _, l := range report.PerAttentionPoint {
		loads = append(loads, attentionPointLoadDTO{
			AttentionPointID: l.AttentionPointID,
			TotalTickets:     l.TotalTickets,
			OpenTickets:      l.OpenTickets,
			InProgress:       l.InProgress,
			ClosedTickets:    l.ClosedTickets,
		})
	}

	hours := make([]hourPointDTO, 0, len(report.ByHour))
	for _, p := range report.ByHour {
		hours = append(hours, hourPointDTO{Hour: p.Hour.Format(time.RFC3339), Count: p.Count})
	}

	return ticketsResponse{
		TimePeriod:            fmt.Sprintf("Last %d days", report.Days),
		TotalTicketsInPeriod:  report.TotalInPeriod,
		TicketsByStatusPeriod: toStatusCountDTOs(report.ByStatus),
		TicketsOverTime:       toDatePointDTOs(report.OverTime),
		TicketsByHour:         hours,
		AvgResolutionHours:    report.AvgResolutionHours,
		UserTypeDistribution: userTypeDistributionDTO{
			PriorityTickets: report.UserTypeDistribution.PriorityTickets,
			RegularTickets:  report.UserTypeDistribution.RegularTickets,
		},
		MostActiveUsers:          users,
		TicketsPerAttentionPoint: loads,
	}
}

func toUsersResponse(report *domain.UserReport) usersResponse {
	recent := make([]recentUserDTO, 0, len(report.RecentUsers))
	for _, u := range report.RecentUsers {
		recent = append(recent, recentUserDTO{
			FirstName:  u.FirstName,
			LastName:   u.LastName,
			DNI:        u.DNI,
			Role:       u.Role.String(),
			DateJoined: u.DateJoined.Format(time.RFC3339),
		})
	}

	return usersResponse{
		UsersByRole:   toRoleCountDTOs(report.ByRole),
		UsersOverTime: toDatePointDTOs(report.OverTime),
		PriorityDistribution: priorityDistributionDTO{
			PriorityUsers: report.PriorityDistribution.PriorityUsers,
			RegularUsers:  report.PriorityDistribution.RegularUsers,
		},
		RecentUsers: recent,
		UserActivity: userActivityDTO{
			ActiveUsers:   report.Activity.ActiveUsers,
			InactiveUsers: report.Activity.InactiveUsers,
		},
	}
}

func toAttentionPointsResponse(report *domain.AttentionPointReport) attentionPointsResponse {
	detail := make([]attentionPointDetailDTO, 0, len(report.Detail))
	for _, d := range report.Detail {
		detail = append(detail, attentionPointDetailDTO{
			AttentionPointID:   d.AttentionPointID,
			Availability:       d.Availability,
			CurrentTickets:     d.CurrentTickets,
			TotalTicketsServed: d.TotalTicketsServed,
			PendingTickets:     d.PendingTickets,
		})
	}

	perf := make([]attentionPointPerformanceDTO, 0, len(report.Performance))
	for _, p := range report.Performance {
		perf = append(perf, attentionPointPerformanceDTO{
			AttentionPointID:   p.AttentionPointID,
			TicketsServed:      p.TicketsServed,
			AvgResolutionHours: p.AvgResolutionHours,
		})
	}

	return attentionPointsResponse{
		UtilizationSummary: utilizationSummaryDTO{
			TotalPoints:     report.Utilization.TotalPoints,
			AvailablePoints: report.Utilization.AvailablePoints,
			OccupiedPoints:  report.Utilization.OccupiedPoints,
			UtilizationRate: report.Utilization.UtilizationRate,
		},
		AttentionPointsDetail: detail,
		PerformanceMetrics:    perf,
	}
}

func toStatusCountDTOs(counts []domain.StatusCount) []statusCountDTO {
	out := make([]statusCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, statusCountDTO{Status: string(c.Status), Count: c.Count})
	}
	return out
}

func toPriorityCountDTOs(counts []domain.PriorityCount) []priorityCountDTO {
	out := make([]priorityCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, priorityCountDTO{Priority: string(c.Priority), Count: c.Count})
	}
	return out
}

func toRoleCountDTOs(counts []domain.RoleCount) []roleCountDTO {
	out := make([]roleCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, roleCountDTO{Role: c.Role.String(), Count: c.Count})
	}
	return out
}

func toDatePointDTOs(points []domain.DatePoint) []datePointDTO {
	out := make([]datePointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, datePointDTO{Date: p.Date.Format(dateLayout), Count: p.Count})
	}
	return out
}
