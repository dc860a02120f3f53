package domain

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus represents the possible states of a ticket.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusClosed     TicketStatus = "closed"
)

// String returns the string representation of the status.
func (s TicketStatus) String() string {
	return string(s)
}

// IsValid reports whether the status belongs to the closed status set.
func (s TicketStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// TicketPriority represents the urgency of a ticket.
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
)

// String returns the string representation of the priority.
func (p TicketPriority) String() string {
	return string(p)
}

// Ticket is a queue turn routed to an attention point. UpdatedAt advances
// monotonically and serves as the resolution-time proxy for closed tickets.
type Ticket struct {
	IDTicket         int64
	Status           TicketStatus
	Priority         TicketPriority
	CreatedAt        time.Time
	UpdatedAt        time.Time
	UserID           uuid.UUID
	AttentionPointID int64
}

// ResolutionTime returns the elapsed time between creation and last update.
// It is only meaningful for closed tickets.
func (t *Ticket) ResolutionTime() time.Duration {
	return t.UpdatedAt.Sub(t.CreatedAt)
}
