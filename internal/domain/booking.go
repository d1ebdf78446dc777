package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusRequested BookingStatus = "requested"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusRejected  BookingStatus = "rejected"
)

// Booking represents a desk booking for a single calendar date and slot
type Booking struct {
	ID            int64
	DeskID        int64
	StaffMemberID uuid.UUID
	BookingDate   time.Time // UTC midnight, no time-of-day component
	Slot          Slot
	Status        BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking counts for conflict resolution.
// Cancelled and rejected bookings never block a desk or a staff member.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusRejected
}

// CanBeConfirmed returns true if the booking may transition to confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusRequested
}

// OfficeBookingsFilter фильтр для получения бронирований офиса
type OfficeBookingsFilter struct {
	OfficeID        int64      // Обязательный параметр
	StartDate       *time.Time // Начало периода (опционально)
	EndDate         *time.Time // Конец периода (опционально)
	Slot            *Slot      // Фильтр по слоту (опционально)
	IncludeInactive bool       // Включать ли отменённые и отклонённые бронирования
}

// DailyCount одна строка агрегации: дата и количество бронирований
type DailyCount struct {
	Date  time.Time
	Count int
}
