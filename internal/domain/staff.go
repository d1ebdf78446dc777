package domain

import (
	"time"

	"github.com/google/uuid"
)

// StaffRole represents the role of a staff member
type StaffRole string

const (
	RoleEmployee StaffRole = "employee"
	RoleManager  StaffRole = "manager"
	RoleOwner    StaffRole = "owner"
	RoleAdmin    StaffRole = "admin"
)

// IsValid returns true if the role is one of the known values
func (r StaffRole) IsValid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// StaffMember represents an employee who can book desks
type StaffMember struct {
	ID     uuid.UUID
	Name   string
	Email  string
	Active bool
	Role   StaffRole

	CreatedAt time.Time
	UpdatedAt time.Time
}
