package domain

import "fmt"

// Slot represents a bookable unit of a working day
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotFullDay   Slot = "full_day"
)

// AllSlots список всех допустимых слотов
var AllSlots = []Slot{
	SlotMorning,
	SlotAfternoon,
	SlotFullDay,
}

// Overlaps reports whether two slots on the same desk and date conflict.
// FullDay overlaps with every slot (including another FullDay),
// Morning only with Morning, Afternoon only with Afternoon.
// The relation is symmetric.
func (s Slot) Overlaps(other Slot) bool {
	if s == SlotFullDay || other == SlotFullDay {
		return true
	}
	return s == other
}

// IsValid returns true if the slot is one of the known values
func (s Slot) IsValid() bool {
	switch s {
	case SlotMorning, SlotAfternoon, SlotFullDay:
		return true
	default:
		return false
	}
}

// ParseSlot конвертирует строку в Slot с валидацией
func ParseSlot(s string) (Slot, error) {
	slot := Slot(s)
	if !slot.IsValid() {
		return "", fmt.Errorf("invalid slot %q", s)
	}
	return slot, nil
}
