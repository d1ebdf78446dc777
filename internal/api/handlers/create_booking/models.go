package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	DeskID int64  `json:"deskId"`
	Date   string `json:"date"` // "2025-01-06"
	Slot   string `json:"slot"` // morning | afternoon | full_day
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
func (r *CreateBookingRequest) ToUseCaseRequest(staffID uuid.UUID) (*createBooking.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		DeskID:        r.DeskID,
		StaffMemberID: staffID,
		Date:          date,
		Slot:          domain.Slot(r.Slot),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
