package domain

import "time"

// StatusCount is one bucket of a tickets-by-status grouping.
type StatusCount struct {
	Status TicketStatus
	Count  int64
}

// PriorityCount is one bucket of a tickets-by-priority grouping.
type PriorityCount struct {
	Priority TicketPriority
	Count    int64
}

// RoleCount is one bucket of a users-by-role grouping.
type RoleCount struct {
	Role  UserRole
	Count int64
}

// DatePoint is one day of a date-truncated time series. Days with no rows
// are absent from the series; no zero-filling is performed.
type DatePoint struct {
	Date  time.Time
	Count int64
}

// HourPoint is one hour of an hour-truncated time series.
type HourPoint struct {
	Hour  time.Time
	Count int64
}

// DashboardSummary holds the eight scalar counts of the dashboard report.
type DashboardSummary struct {
	TotalUsers           int64
	TotalTickets         int64
	TotalAttentionPoints int64
	TotalPublicity       int64
	RecentTickets        int64
	TicketsToday         int64
	ActivePublicity      int64
	PriorityUsers        int64
}

// AttentionPointBreakdown splits attention points by availability.
type AttentionPointBreakdown struct {
	Available int64
	Occupied  int64
	Total     int64
}

// DashboardReport is the composite dashboard statistics result.
type DashboardReport struct {
	Summary           DashboardSummary
	UsersByRole       []RoleCount
	TicketsByStatus   []StatusCount
	TicketsByPriority []PriorityCount
	AttentionPoints   AttentionPointBreakdown
}

// UserTypeDistribution splits windowed ticket counts by the creator's
// priority flag.
type UserTypeDistribution struct {
	PriorityTickets int64
	RegularTickets  int64
}

// ActiveUser is one row of the most-active-users ranking. Ties are broken
// by the store's natural row order, which is stable but not deterministic.
type ActiveUser struct {
	FirstName   string
	LastName    string
	DNI         string
	TicketCount int64
}

// AttentionPointLoad is the per-point ticket breakdown within a window.
type AttentionPointLoad struct {
	AttentionPointID int64
	TotalTickets     int64
	OpenTickets      int64
	InProgress       int64
	ClosedTickets    int64
}

// TicketReport is the composite ticket statistics result for a trailing
// window of Days days.
type TicketReport struct {
	Days                 int
	TotalInPeriod        int64
	ByStatus             []StatusCount
	OverTime             []DatePoint
	ByHour               []HourPoint
	AvgResolutionHours   *float64
	UserTypeDistribution UserTypeDistribution
	MostActiveUsers      []ActiveUser
	PerAttentionPoint    []AttentionPointLoad
}

// PriorityDistribution splits users by their priority flag.
type PriorityDistribution struct {
	PriorityUsers int64
	RegularUsers  int64
}

// RecentUser is one row of the most-recently-joined listing.
type RecentUser struct {
	FirstName  string
	LastName   string
	DNI        string
	Role       UserRole
	DateJoined time.Time
}

// UserActivity counts users with at least one ticket ever against those
// with none. The two always sum to the total user count.
type UserActivity struct {
	ActiveUsers   int64
	InactiveUsers int64
}

// UserReport is the composite user statistics result.
type UserReport struct {
	ByRole               []RoleCount
	OverTime             []DatePoint
	PriorityDistribution PriorityDistribution
	RecentUsers          []RecentUser
	Activity             UserActivity
}

// UtilizationSummary describes attention point occupancy. UtilizationRate is
// occupied/total*100 rounded to two decimals, and 0 when there are no points.
type UtilizationSummary struct {
	TotalPoints     int64
	AvailablePoints int64
	OccupiedPoints  int64
	UtilizationRate float64
}

// AttentionPointDetail is the current workload of one attention point.
// Every point appears here, including points with no tickets at all.
type AttentionPointDetail struct {
	AttentionPointID   int64
	Availability       bool
	CurrentTickets     int64
	TotalTicketsServed int64
	PendingTickets     int64
}

// AttentionPointPerformance carries resolution figures for points that have
// closed at least one ticket; points with none are omitted entirely.
type AttentionPointPerformance struct {
	AttentionPointID   int64
	TicketsServed      int64
	AvgResolutionHours float64
}

// AttentionPointReport is the composite attention point statistics result.
type AttentionPointReport struct {
	Utilization UtilizationSummary
	Detail      []AttentionPointDetail
	Performance []AttentionPointPerformance
}
