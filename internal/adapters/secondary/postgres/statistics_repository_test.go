package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ticketera/queue-admin-backend/internal/core/domain"
)

func seedUser(t *testing.T, ctx context.Context, role domain.UserRole, priority bool, joined time.Time) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := testPool.Exec(ctx, `
INSERT INTO users (id, first_name, last_name, dni, role, priority, date_joined)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, "Test", "User", uuid.NewString()[:8], string(role), priority, joined)
	require.NoError(t, err)
	return id
}

func seedAttentionPoint(t *testing.T, ctx context.Context, available bool) int64 {
	t.Helper()
	var id int64
	err := testPool.QueryRow(ctx, `
INSERT INTO attention_points (name, availability)
VALUES ($1, $2)
RETURNING attention_point_id`,
		"Counter "+uuid.NewString()[:4], available).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedTicket(t *testing.T, ctx context.Context, userID uuid.UUID, pointID int64, status domain.TicketStatus, createdAt, updatedAt time.Time) int64 {
	t.Helper()
	var id int64
	err := testPool.QueryRow(ctx, `
INSERT INTO tickets (status, priority, created_at, updated_at, user_id, attention_point_id)
VALUES ($1, 'medium', $2, $3, $4, $5)
RETURNING id_ticket`,
		string(status), createdAt, updatedAt, userID, pointID).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedPublicity(t *testing.T, ctx context.Context, start, end time.Time, active bool) int64 {
	t.Helper()
	var id int64
	err := testPool.QueryRow(ctx, `
INSERT INTO publicity (title, content, start_date, end_date, is_active)
VALUES ('Promo', 'Body', $1, $2, $3)
RETURNING id_publicity`,
		start, end, active).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestStatisticsRepository_DashboardScenario(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	repo := NewStatisticsRepository(testPool)

	now := time.Now().UTC()
	user := seedUser(t, ctx, domain.RoleClient, false, now.AddDate(0, 0, -10))
	point := seedAttentionPoint(t, ctx, true)

	// 3 tickets created today: 2 open, 1 closed with a 2-hour resolution
	seedTicket(t, ctx, user, point, domain.StatusOpen, now, now)
	seedTicket(t, ctx, user, point, domain.StatusOpen, now, now)
	seedTicket(t, ctx, user, point, domain.StatusClosed, now.Add(-2*time.Hour), now)

	ticketsToday, err := repo.CountTicketsOn(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), ticketsToday)

	recent, err := repo.CountTicketsSince(ctx, now.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, int64(3), recent)

	byStatus, err := repo.TicketsByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.StatusCount{
		{Status: domain.StatusClosed, Count: 1},
		{Status: domain.StatusOpen, Count: 2},
	}, byStatus)
}

func TestStatisticsRepository_GroupingsPartitionPopulation(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	repo := NewStatisticsRepository(testPool)

	now := time.Now().UTC()
	seedUser(t, ctx, domain.RoleAdmin, false, now)
	seedUser(t, ctx, domain.RoleClient, true, now)
	seedUser(t, ctx, domain.RoleClient, false, now)
	seedUser(t, ctx, domain.RoleEmployee, false, now)

	byRole, err := repo.UsersByRole(ctx)
	require.NoError(t, err)

	seen := make(map[domain.UserRole]bool)
	var grouped int64
	for _, rc := range byRole {
		assert.False(t, seen[rc.Role], "duplicate key %q in grouping", rc.Role)
		seen[rc.Role] = true
		grouped += rc.Count
	}

	total, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, total, grouped, "every user must land in exactly one role group")

	// ascending key order
	assert.Equal(t, []domain.RoleCount{
		{Role: domain.RoleAdmin, Count: 1},
		{Role: domain.RoleClient, Count: 2},
		{Role: domain.RoleEmployee, Count: 1},
	}, byRole)
}

func TestStatisticsRepository_AverageResolutionHours(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	repo := NewStatisticsRepository(testPool)

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -30)
	user := seedUser(t, ctx, domain.RoleClient, false, now)
	point := seedAttentionPoint(t, ctx, true)

	t.Run("absent when no closed tickets in window", func(t *testing.T) {
		seedTicket(t, ctx, user, point, domain.StatusOpen, now, now)

		avg, err := repo.AverageResolutionHours(ctx, since)
		require.NoError(t, err)
		assert.Nil(t, avg)
	})

	t.Run("mean over exactly the closed set in window", func(t *testing.T) {
		// 2h and 4h resolutions inside the window
		seedTicket(t, ctx, user, point, domain.StatusClosed, now.Add(-2*time.Hour), now)
		seedTicket(t, ctx, user, point, domain.StatusClosed, now.Add(-4*time.Hour), now)
		// closed ticket created before the window must not contribute
		old := now.AddDate(0, 0, -60)
		seedTicket(t, ctx, user, point, domain.StatusClosed, old, old.Add(100*time.Hour))

		avg, err := repo.AverageResolutionHours(ctx, since)
		require.NoError(t, err)
		require.NotNil(t, avg)
		assert.InDelta(t, 3.0, *avg, 0.01)
	})
}

func TestStatisticsRepository_UserActivitySumsToTotal(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	repo := NewStatisticsRepository(testPool)

	now := time.Now().UTC()
	active := seedUser(t, ctx, domain.RoleClient, false, now)
	seedUser(t, ctx, domain.RoleClient, false, now)
	seedUser(t, ctx, domain.RoleEmployee, false, now)
	point := seedAttentionPoint(t, ctx, true)
	seedTicket(t, ctx, active, point, domain.StatusOpen, now, now)
	seedTicket(t, ctx, active, point, domain.StatusClosed, now.Add(-time.Hour), now)

	activity, err := repo.UserActivity(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), activity.ActiveUsers)
	assert.Equal(t, int64(2), activity.InactiveUsers)

	total, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, total, activity.ActiveUsers+activity.InactiveUsers)
}

func TestStatisticsRepository_MostActiveUsers(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	repo := NewStatisticsRepository(testPool)

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -30)
	point := seedAttentionPoint(t, ctx, true)

	busy := seedUser(t, ctx, domain.RoleClient, false, now)
	casual := seedUser(t, ctx, domain.RoleClient, false, now)
	seedUser(t, ctx, domain.RoleClient, false, now) // no tickets at all

	for i := 0; i < 3; i++ {
		seedTicket(t, ctx, busy, point, domain.StatusOpen, now.Add(-time.Duration(i)*time.Hour), now)
	}
	seedTicket(t, ctx, casual, point, domain.StatusOpen, now, now)
	// outside the window, must not count
	seedTicket(t, ctx, casual, point, domain.StatusOpen, now.AddDate(0, 0, -45), now.AddDate(0, 0, -45))

	users, err := repo.MostActiveUsers(ctx, since, 5)
	require.NoError(t, err)
	require.Len(t, users, 2, "zero-ticket users are excluded")
	assert.Equal(t, int64(3), users[0].TicketCount)
	assert.Equal(t, int64(1), users[1].TicketCount)
}

func TestStatisticsRepository_TicketsPerAttentionPoint(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	repo := NewStatisticsRepository(testPool)

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -30)
	user := seedUser(t, ctx, domain.RoleClient, false, now)
	busy := seedAttentionPoint(t, ctx, false)
	quiet := seedAttentionPoint(t, ctx, true)

	seedTicket(t, ctx, user, busy, domain.StatusOpen, now, now)
	seedTicket(t, ctx, user, busy, domain.StatusInProgress, now, now)
	seedTicket(t, ctx, user, busy, domain.StatusClosed, now.Add(-time.Hour), now)
	seedTicket(t, ctx, user, quiet, domain.StatusOpen, now, now)

	loads, err := repo.TicketsPerAttentionPoint(ctx, since)
	require.NoError(t, err)
	require.Len(t, loads, 2)

	// ordered by total descending
	assert.Equal(t, busy, loads[0].AttentionPointID)
	assert.Equal(t, int64(3), loads[0].TotalTickets)
	assert.Equal(t, int64(1), loads[0].OpenTickets)
	assert.Equal(t, int64(1), loads[0].InProgress)
	assert.Equal(t, int64(1), loads[0].ClosedTickets)
	assert.Equal(t, quiet, loads[1].AttentionPointID)
	assert.Equal(t, int64(1), loads[1].TotalTickets)
}

func TestStatisticsRepository_AttentionPointDetailAndPerformance(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	repo := NewStatisticsRepository(testPool)

	now := time.Now().UTC()
	user := seedUser(t, ctx, domain.RoleClient, false, now)
	working := seedAttentionPoint(t, ctx, false)
	idle := seedAttentionPoint(t, ctx, true)

	seedTicket(t, ctx, user, working, domain.StatusInProgress, now, now)
	seedTicket(t, ctx, user, working, domain.StatusOpen, now, now)
	seedTicket(t, ctx, user, working, domain.StatusClosed, now.Add(-2*time.Hour), now)
	seedTicket(t, ctx, user, working, domain.StatusClosed, now.Add(-4*time.Hour), now)

	detail, err := repo.AttentionPointDetail(ctx)
	require.NoError(t, err)
	require.Len(t, detail, 2, "detail includes points with no tickets")

	assert.Equal(t, working, detail[0].AttentionPointID)
	assert.Equal(t, int64(1), detail[0].CurrentTickets)
	assert.Equal(t, int64(2), detail[0].TotalTicketsServed)
	assert.Equal(t, int64(1), detail[0].PendingTickets)

	assert.Equal(t, idle, detail[1].AttentionPointID)
	assert.Zero(t, detail[1].CurrentTickets)
	assert.Zero(t, detail[1].TotalTicketsServed)
	assert.Zero(t, detail[1].PendingTickets)

	performance, err := repo.AttentionPointPerformance(ctx)
	require.NoError(t, err)
	require.Len(t, performance, 1, "points with zero closed tickets are omitted")
	assert.Equal(t, working, performance[0].AttentionPointID)
	assert.Equal(t, int64(2), performance[0].TicketsServed)
	assert.InDelta(t, 3.0, performance[0].AvgResolutionHours, 0.01)
}

func TestStatisticsRepository_TimeSeriesHaveNoZeroFill(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	repo := NewStatisticsRepository(testPool)

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -30)
	user := seedUser(t, ctx, domain.RoleClient, false, now)
	point := seedAttentionPoint(t, ctx, true)

	threeDaysAgo := now.AddDate(0, 0, -3)
	seedTicket(t, ctx, user, point, domain.StatusOpen, threeDaysAgo, threeDaysAgo)
	seedTicket(t, ctx, user, point, domain.StatusOpen, threeDaysAgo, threeDaysAgo)
	seedTicket(t, ctx, user, point, domain.StatusOpen, now, now)

	perDay, err := repo.TicketsPerDay(ctx, since)
	require.NoError(t, err)
	require.Len(t, perDay, 2, "days with no tickets are absent, not zero")
	assert.True(t, perDay[0].Date.Before(perDay[1].Date), "series is ascending")
	assert.Equal(t, int64(2), perDay[0].Count)
	assert.Equal(t, int64(1), perDay[1].Count)

	perHour, err := repo.TicketsPerHour(ctx, now)
	require.NoError(t, err)
	require.Len(t, perHour, 1, "only the current calendar date is bucketed")
	assert.Equal(t, int64(1), perHour[0].Count)
}

func TestStatisticsRepository_EmptyWindow(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	repo := NewStatisticsRepository(testPool)

	now := time.Now().UTC()
	user := seedUser(t, ctx, domain.RoleClient, false, now)
	point := seedAttentionPoint(t, ctx, true)
	seedTicket(t, ctx, user, point, domain.StatusOpen, now.Add(-time.Minute), now)

	// days=0 degenerates to [now, now]: tickets created a minute ago are out
	count, err := repo.CountTicketsSince(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStatisticsRepository_ActivePublicity(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	repo := NewStatisticsRepository(testPool)

	today := time.Now().UTC()
	seedPublicity(t, ctx, today.AddDate(0, 0, -1), today.AddDate(0, 0, 1), true)
	seedPublicity(t, ctx, today.AddDate(0, 0, -10), today.AddDate(0, 0, -5), true)  // window closed
	seedPublicity(t, ctx, today.AddDate(0, 0, -1), today.AddDate(0, 0, 1), false)   // not flagged
	seedPublicity(t, ctx, today.AddDate(0, 0, 5), today.AddDate(0, 0, 10), true)    // not started

	active, err := repo.CountActivePublicity(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	total, err := repo.CountPublicity(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

func TestStatisticsRepository_TicketsByUserPriority(t *testing.T) {
	ctx := context.Background()
	resetTables(t, ctx)
	repo := NewStatisticsRepository(testPool)

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -30)
	vip := seedUser(t, ctx, domain.RoleClient, true, now)
	regular := seedUser(t, ctx, domain.RoleClient, false, now)
	point := seedAttentionPoint(t, ctx, true)

	seedTicket(t, ctx, vip, point, domain.StatusOpen, now, now)
	seedTicket(t, ctx, vip, point, domain.StatusOpen, now, now)
	seedTicket(t, ctx, regular, point, domain.StatusOpen, now, now)

	dist, err := repo.TicketsByUserPriority(ctx, since)
	require.NoError(t, err)
	assert.Equal(t, int64(2), dist.PriorityTickets)
	assert.Equal(t, int64(1), dist.RegularTickets)
}
