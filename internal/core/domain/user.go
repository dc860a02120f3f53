package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the closed set of roles a user can hold.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
	RoleClient   UserRole = "client"
)

// String returns the string representation of the role.
func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether the role belongs to the closed role set.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleClient:
		return true
	}
	return false
}

// User is a registered account in the queue-management system.
// Priority marks users flagged for expedited handling.
type User struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	DNI        string
	Role       UserRole
	Priority   bool
	DateJoined time.Time
}
