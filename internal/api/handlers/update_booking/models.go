package update_booking

import (
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	updateBooking "github.com/m04kA/SMC-DeskBookingService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model.
// Пропущенные поля остаются без изменений.
type UpdateBookingRequest struct {
	DeskID *int64  `json:"deskId,omitempty"`
	Date   *string `json:"date,omitempty"` // "2025-01-06"
	Slot   *string `json:"slot,omitempty"`
	Status *string `json:"status,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64  `json:"id"`
	DeskID        int64  `json:"deskId"`
	StaffMemberID string `json:"staffMemberId"`
	Date          string `json:"date"`
	Slot          string `json:"slot"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		BookingID: bookingID,
		DeskID:    r.DeskID,
	}

	if r.Date != nil {
		date, err := domain.ParseDate(*r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.Slot != nil {
		slot := domain.Slot(*r.Slot)
		req.Slot = &slot
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		req.Status = &status
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		DeskID:        resp.DeskID,
		StaffMemberID: resp.StaffMemberID.String(),
		Date:          resp.BookingDate.Format(domain.DateFormat),
		Slot:          resp.Slot,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
