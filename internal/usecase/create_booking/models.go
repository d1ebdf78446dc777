package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	DeskID        int64       // ID стола
	StaffMemberID uuid.UUID   // ID сотрудника
	Date          time.Time   // Календарная дата бронирования
	Slot          domain.Slot // Слот: morning | afternoon | full_day
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64     // ID созданного бронирования
	DeskID        int64     // ID стола
	StaffMemberID uuid.UUID // ID сотрудника
	BookingDate   time.Time // Дата бронирования
	Slot          string    // Слот
	Status        string    // Статус (requested)

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
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
