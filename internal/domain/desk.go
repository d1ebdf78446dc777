package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeskType represents the kind of workplace a desk offers
type DeskType string

const (
	DeskTypeStandard    DeskType = "standard"
	DeskTypeStanding    DeskType = "standing"
	DeskTypeHighSeat    DeskType = "high_seat"
	DeskTypeMeetingRoom DeskType = "meeting_room"
)

// IsValid returns true if the desk type is one of the known values
func (t DeskType) IsValid() bool {
	switch t {
	case DeskTypeStandard, DeskTypeStanding, DeskTypeHighSeat, DeskTypeMeetingRoom:
		return true
	default:
		return false
	}
}

// Desk represents a bookable desk in an office.
// ReservedFor, when set, marks the desk as permanently owned by that staff
// member; only a DeskRelease for a concrete date opens it to others.
type Desk struct {
	ID          int64
	OfficeID    int64
	Label       string
	Type        DeskType
	ReservedFor *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsReservedDesk returns true if the desk has a permanent owner
func (d *Desk) IsReservedDesk() bool {
	return d.ReservedFor != nil
}

// IsOwnedBy returns true if the desk is permanently reserved for the given staff member
func (d *Desk) IsOwnedBy(staffID uuid.UUID) bool {
	return d.ReservedFor != nil && *d.ReservedFor == staffID
}

// DeskRelease is a single-date exception: the desk's permanent owner is not
// asserting ownership on ReleaseDate. At most one row exists per (desk, date).
type DeskRelease struct {
	ID          int64
	DeskID      int64
	ReleaseDate time.Time // UTC midnight
	CreatedAt   time.Time
}
