package update_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// Request модель запроса на обновление бронирования.
// nil-поля остаются без изменений.
type Request struct {
	BookingID int64
	DeskID    *int64
	Date      *time.Time
	Slot      *domain.Slot
	Status    *domain.BookingStatus
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID            int64
	DeskID        int64
	StaffMemberID uuid.UUID
	BookingDate   time.Time
	Slot          string
	Status        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		DeskID:        b.DeskID,
		StaffMemberID: b.StaffMemberID,
		BookingDate:   b.BookingDate,
		Slot:          string(b.Slot),
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
