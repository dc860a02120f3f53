package domain

// AttentionPoint is a staffed service counter that tickets are routed to.
// Availability is true while the counter is free of an in-progress ticket.
type AttentionPoint struct {
	AttentionPointID int64
	Name             string
	Availability     bool
}
