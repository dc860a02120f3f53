package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ticketera/queue-admin-backend/internal/core/domain"
	"github.com/ticketera/queue-admin-backend/internal/core/ports"
)

// StatisticsRepository runs the aggregate queries behind the report
// builders. Every method is one independent round trip; nothing here holds
// state or a transaction across calls.
type StatisticsRepository struct {
	pool *pgxpool.Pool
}

var _ ports.StatisticsRepository = (*StatisticsRepository)(nil)

func NewStatisticsRepository(pool *pgxpool.Pool) ports.StatisticsRepository {
	return &StatisticsRepository{pool: pool}
}

func (r *StatisticsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *StatisticsRepository) CountPriorityUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE priority`)
}

func (r *StatisticsRepository) CountRegularUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE NOT priority`)
}

func (r *StatisticsRepository) UsersByRole(ctx context.Context) ([]domain.RoleCount, error) {
	const query = `
SELECT role, COUNT(*)
FROM users
GROUP BY role
ORDER BY role
`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]domain.RoleCount, 0)
	for rows.Next() {
		var (
			role  string
			count int64
		)
		if err := rows.Scan(&role, &count); err != nil {
			return nil, err
		}
		counts = append(counts, domain.RoleCount{Role: domain.UserRole(role), Count: count})
	}

	return counts, rows.Err()
}

func (r *StatisticsRepository) UsersJoinedPerDay(ctx context.Context, since time.Time) ([]domain.DatePoint, error) {
	const query = `
SELECT date_trunc('day', date_joined) AS day, COUNT(*)
FROM users
WHERE date_joined >= $1
GROUP BY 1
ORDER BY 1
`

	return r.datePoints(ctx, query, since)
}

func (r *StatisticsRepository) MostRecentUsers(ctx context.Context, limit int) ([]domain.RecentUser, error) {
	const query = `
SELECT first_name, last_name, dni, role, date_joined
FROM users
ORDER BY date_joined DESC
LIMIT $1
`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.RecentUser, 0, limit)
	for rows.Next() {
		var (
			u    domain.RecentUser
			role string
		)
		if err := rows.Scan(&u.FirstName, &u.LastName, &u.DNI, &role, &u.DateJoined); err != nil {
			return nil, err
		}
		u.Role = domain.UserRole(role)
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *StatisticsRepository) UserActivity(ctx context.Context) (domain.UserActivity, error) {
	// One query over a per-user ticket count, so active + inactive always
	// sums to the total user count regardless of concurrent writes.
	const query = `
SELECT COUNT(*) FILTER (WHERE c.ticket_count > 0),
       COUNT(*) FILTER (WHERE c.ticket_count = 0)
FROM (
  SELECT u.id, COUNT(t.id_ticket) AS ticket_count
  FROM users u
  LEFT JOIN tickets t ON t.user_id = u.id
  GROUP BY u.id
) c
`

	var activity domain.UserActivity
	err := r.pool.QueryRow(ctx, query).Scan(&activity.ActiveUsers, &activity.InactiveUsers)
	return activity, err
}

func (r *StatisticsRepository) CountTickets(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM tickets`)
}

func (r *StatisticsRepository) CountTicketsSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM tickets WHERE created_at >= $1`, since)
}

func (r *StatisticsRepository) CountTicketsOn(ctx context.Context, day time.Time) (int64, error) {
	const query = `
SELECT COUNT(*)
FROM tickets
WHERE created_at >= date_trunc('day', $1::timestamptz)
  AND created_at < date_trunc('day', $1::timestamptz) + interval '1 day'
`

	return r.count(ctx, query, day)
}

func (r *StatisticsRepository) TicketsByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	const query = `
SELECT status, COUNT(id_ticket)
FROM tickets
GROUP BY status
ORDER BY status
`

	return r.statusCounts(ctx, query)
}

func (r *StatisticsRepository) TicketsByStatusSince(ctx context.Context, since time.Time) ([]domain.StatusCount, error) {
	const query = `
SELECT status, COUNT(id_ticket)
FROM tickets
WHERE created_at >= $1
GROUP BY status
ORDER BY status
`

	return r.statusCounts(ctx, query, since)
}

func (r *StatisticsRepository) TicketsByPriority(ctx context.Context) ([]domain.PriorityCount, error) {
	const query = `
SELECT priority, COUNT(id_ticket)
FROM tickets
GROUP BY priority
ORDER BY priority
`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]domain.PriorityCount, 0)
	for rows.Next() {
		var (
			priority string
			count    int64
		)
		if err := rows.Scan(&priority, &count); err != nil {
			return nil, err
		}
		counts = append(counts, domain.PriorityCount{Priority: domain.TicketPriority(priority), Count: count})
	}

	return counts, rows.Err()
}

func (r *StatisticsRepository) TicketsPerDay(ctx context.Context, since time.Time) ([]domain.DatePoint, error) {
	// Days with no tickets are absent from the series; no zero-filling.
	const query = `
SELECT date_trunc('day', created_at) AS day, COUNT(id_ticket)
FROM tickets
WHERE created_at >= $1
GROUP BY 1
ORDER BY 1
`

	return r.datePoints(ctx, query, since)
}

func (r *StatisticsRepository) TicketsPerHour(ctx context.Context, day time.Time) ([]domain.HourPoint, error) {
	const query = `
SELECT date_trunc('hour', created_at) AS hour, COUNT(id_ticket)
FROM tickets
WHERE created_at >= date_trunc('day', $1::timestamptz)
  AND created_at < date_trunc('day', $1::timestamptz) + interval '1 day'
GROUP BY 1
ORDER BY 1
`

	rows, err := r.pool.Query(ctx, query, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]domain.HourPoint, 0)
	for rows.Next() {
		var p domain.HourPoint
		if err := rows.Scan(&p.Hour, &p.Count); err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, rows.Err()
}

func (r *StatisticsRepository) AverageResolutionHours(ctx context.Context, since time.Time) (*float64, error) {
	const query = `
SELECT AVG(EXTRACT(EPOCH FROM (updated_at - created_at)))
FROM tickets
WHERE status = 'closed'
  AND created_at >= $1
`

	var avgSeconds pgtype.Float8
	if err := r.pool.QueryRow(ctx, query, since).Scan(&avgSeconds); err != nil {
		return nil, err
	}
	if !avgSeconds.Valid {
		// no closed tickets in the window
		return nil, nil
	}

	hours := avgSeconds.Float64 / 3600
	return &hours, nil
}

func (r *StatisticsRepository) TicketsByUserPriority(ctx context.Context, since time.Time) (domain.UserTypeDistribution, error) {
	const query = `
SELECT COUNT(*) FILTER (WHERE u.priority),
       COUNT(*) FILTER (WHERE NOT u.priority)
FROM tickets t
JOIN users u ON t.user_id = u.id
WHERE t.created_at >= $1
`

	var dist domain.UserTypeDistribution
	err := r.pool.QueryRow(ctx, query, since).Scan(&dist.PriorityTickets, &dist.RegularTickets)
	return dist, err
}

func (r *StatisticsRepository) MostActiveUsers(ctx context.Context, since time.Time, limit int) ([]domain.ActiveUser, error) {
	// Ties share a count and fall back to row order, which is stable but
	// implementation-defined.
	const query = `
SELECT u.first_name, u.last_name, u.dni, COUNT(t.id_ticket) AS ticket_count
FROM users u
JOIN tickets t ON t.user_id = u.id
WHERE t.created_at >= $1
GROUP BY u.id, u.first_name, u.last_name, u.dni
ORDER BY ticket_count DESC
LIMIT $2
`

	rows, err := r.pool.Query(ctx, query, since, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.ActiveUser, 0, limit)
	for rows.Next() {
		var u domain.ActiveUser
		if err := rows.Scan(&u.FirstName, &u.LastName, &u.DNI, &u.TicketCount); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *StatisticsRepository) TicketsPerAttentionPoint(ctx context.Context, since time.Time) ([]domain.AttentionPointLoad, error) {
	const query = `
SELECT ap.attention_point_id,
       COUNT(t.id_ticket),
       COUNT(t.id_ticket) FILTER (WHERE t.status = 'open'),
       COUNT(t.id_ticket) FILTER (WHERE t.status = 'in_progress'),
       COUNT(t.id_ticket) FILTER (WHERE t.status = 'closed')
FROM attention_points ap
LEFT JOIN tickets t ON t.attention_point_id = ap.attention_point_id
  AND t.created_at >= $1
GROUP BY ap.attention_point_id
ORDER BY COUNT(t.id_ticket) DESC
`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loads := make([]domain.AttentionPointLoad, 0)
	for rows.Next() {
		var l domain.AttentionPointLoad
		if err := rows.Scan(&l.AttentionPointID, &l.TotalTickets, &l.OpenTickets, &l.InProgress, &l.ClosedTickets); err != nil {
			return nil, err
		}
		loads = append(loads, l)
	}

	return loads, rows.Err()
}

func (r *StatisticsRepository) CountAttentionPoints(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM attention_points`)
}

func (r *StatisticsRepository) AttentionPointAvailability(ctx context.Context) (domain.AttentionPointBreakdown, error) {
	const query = `
SELECT COUNT(*) FILTER (WHERE availability),
       COUNT(*) FILTER (WHERE NOT availability),
       COUNT(*)
FROM attention_points
`

	var breakdown domain.AttentionPointBreakdown
	err := r.pool.QueryRow(ctx, query).Scan(&breakdown.Available, &breakdown.Occupied, &breakdown.Total)
	return breakdown, err
}

func (r *StatisticsRepository) AttentionPointDetail(ctx context.Context) ([]domain.AttentionPointDetail, error) {
	// Includes points with no tickets at all; counts come back as zero.
	const query = `
SELECT ap.attention_point_id,
       ap.availability,
       COUNT(t.id_ticket) FILTER (WHERE t.status = 'in_progress'),
       COUNT(t.id_ticket) FILTER (WHERE t.status = 'closed'),
       COUNT(t.id_ticket) FILTER (WHERE t.status = 'open')
FROM attention_points ap
LEFT JOIN tickets t ON t.attention_point_id = ap.attention_point_id
GROUP BY ap.attention_point_id, ap.availability
ORDER BY ap.attention_point_id
`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]domain.AttentionPointDetail, 0)
	for rows.Next() {
		var d domain.AttentionPointDetail
		if err := rows.Scan(&d.AttentionPointID, &d.Availability, &d.CurrentTickets, &d.TotalTicketsServed, &d.PendingTickets); err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

func (r *StatisticsRepository) AttentionPointPerformance(ctx context.Context) ([]domain.AttentionPointPerformance, error) {
	// Inner aggregation over closed tickets only: points that never closed
	// a ticket are omitted entirely.
	const query = `
SELECT attention_point_id,
       COUNT(*),
       AVG(EXTRACT(EPOCH FROM (updated_at - created_at))) / 3600
FROM tickets
WHERE status = 'closed'
GROUP BY attention_point_id
ORDER BY attention_point_id
`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metrics := make([]domain.AttentionPointPerformance, 0)
	for rows.Next() {
		var m domain.AttentionPointPerformance
		if err := rows.Scan(&m.AttentionPointID, &m.TicketsServed, &m.AvgResolutionHours); err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}

	return metrics, rows.Err()
}

func (r *StatisticsRepository) CountPublicity(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM publicity`)
}

func (r *StatisticsRepository) CountActivePublicity(ctx context.Context, today time.Time) (int64, error) {
	const query = `
SELECT COUNT(*)
FROM publicity
WHERE is_active
  AND start_date <= $1::date
  AND end_date >= $1::date
`

	return r.count(ctx, query, today)
}

func (r *StatisticsRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *StatisticsRepository) statusCounts(ctx context.Context, query string, args ...any) ([]domain.StatusCount, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]domain.StatusCount, 0)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts = append(counts, domain.StatusCount{Status: domain.TicketStatus(status), Count: count})
	}

	return counts, rows.Err()
}

func (r *StatisticsRepository) datePoints(ctx context.Context, query string, args ...any) ([]domain.DatePoint, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]domain.DatePoint, 0)
	for rows.Next() {
		var p domain.DatePoint
		if err := rows.Scan(&p.Date, &p.Count); err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, rows.Err()
}
