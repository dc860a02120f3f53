package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ticketera/queue-admin-backend/internal/core/domain"
	"github.com/ticketera/queue-admin-backend/internal/core/ports"
)

// PublicityRepository backs the publicity lifecycle. Each bulk update is a
// single UPDATE statement, atomic at the database level; the two-pass
// sequence as a whole is deliberately not transactional.
type PublicityRepository struct {
	pool *pgxpool.Pool
}

var _ ports.PublicityRepository = (*PublicityRepository)(nil)

func NewPublicityRepository(pool *pgxpool.Pool) ports.PublicityRepository {
	return &PublicityRepository{pool: pool}
}

// DeactivateExpired turns off every active banner whose window closed before
// today and returns the number of rows mutated. Repeat calls with the same
// today converge to zero mutations.
func (r *PublicityRepository) DeactivateExpired(ctx context.Context, today time.Time) (int64, error) {
	const query = `
UPDATE publicity
SET is_active = FALSE
WHERE is_active
  AND end_date < $1::date
`

	tag, err := r.pool.Exec(ctx, query, today)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ActivateDue turns on every inactive banner whose window contains today and
// returns the number of rows mutated.
func (r *PublicityRepository) ActivateDue(ctx context.Context, today time.Time) (int64, error) {
	const query = `
UPDATE publicity
SET is_active = TRUE
WHERE NOT is_active
  AND start_date <= $1::date
  AND end_date >= $1::date
`

	tag, err := r.pool.Exec(ctx, query, today)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListActive returns the banners that are flagged active and inside their
// window today, ordered by window start then id.
func (r *PublicityRepository) ListActive(ctx context.Context, today time.Time) ([]*domain.Publicity, error) {
	const query = `
SELECT id_publicity, title, content, image_url, start_date, end_date, is_active
FROM publicity
WHERE is_active
  AND start_date <= $1::date
  AND end_date >= $1::date
ORDER BY start_date, id_publicity
`

	rows, err := r.pool.Query(ctx, query, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	banners := make([]*domain.Publicity, 0)
	for rows.Next() {
		var p domain.Publicity
		if err := rows.Scan(&p.IDPublicity, &p.Title, &p.Content, &p.ImageURL, &p.StartDate, &p.EndDate, &p.IsActive); err != nil {
			return nil, err
		}
		banners = append(banners, &p)
	}

	return banners, rows.Err()
}
