package domain

import "time"

// Publicity is a time-windowed promotional banner. IsActive is mutated only
// by the lifecycle task or by a manual edit, never by the statistics layer.
type Publicity struct {
	IDPublicity int64
	Title       string
	Content     string
	ImageURL    string
	StartDate   time.Time
	EndDate     time.Time
	IsActive    bool
}

// InWindow reports whether today falls inside [StartDate, EndDate].
// Dates are compared at day granularity.
func (p *Publicity) InWindow(today time.Time) bool {
	day := truncateToDay(today)
	return !p.StartDate.After(day) && !p.EndDate.Before(day)
}

// Expired reports whether the banner's window closed before today.
func (p *Publicity) Expired(today time.Time) bool {
	return p.EndDate.Before(truncateToDay(today))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
