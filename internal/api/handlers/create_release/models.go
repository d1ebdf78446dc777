package create_release

import (
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	createRelease "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_release"
)

// CreateReleaseRequest HTTP request model
type CreateReleaseRequest struct {
	Date string `json:"date"` // "2025-01-06"
}

// ReleaseResponse HTTP response model
type ReleaseResponse struct {
	ID          int64  `json:"id"`
	DeskID      int64  `json:"deskId"`
	ReleaseDate string `json:"releaseDate"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReleaseRequest) ToUseCaseRequest(deskID int64) (*createRelease.Request, error) {
	date, err := domain.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createRelease.Request{
		DeskID: deskID,
		Date:   date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createRelease.Response) *ReleaseResponse {
	return &ReleaseResponse{
		ID:          resp.ID,
		DeskID:      resp.DeskID,
		ReleaseDate: resp.ReleaseDate.Format(domain.DateFormat),
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
