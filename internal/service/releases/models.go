package releases

import (
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// ReleaseResponse ответ с данными release
type ReleaseResponse struct {
	ID          int64     `json:"id"`
	DeskID      int64     `json:"deskId"`
	ReleaseDate string    `json:"releaseDate"` // "2025-01-06"
	CreatedAt   time.Time `json:"createdAt"`
}

// ReleaseListResponse ответ со списком releases
type ReleaseListResponse struct {
	Releases []ReleaseResponse `json:"releases"`
}

// FromDomainRelease конвертирует domain модель в DTO
func FromDomainRelease(r *domain.DeskRelease) *ReleaseResponse {
	if r == nil {
		return nil
	}

	return &ReleaseResponse{
		ID:          r.ID,
		DeskID:      r.DeskID,
		ReleaseDate: r.ReleaseDate.Format(domain.DateFormat),
		CreatedAt:   r.CreatedAt,
	}
}

// FromDomainReleaseList конвертирует список domain моделей в DTO
func FromDomainReleaseList(releases []*domain.DeskRelease) *ReleaseListResponse {
	resp := &ReleaseListResponse{
		Releases: make([]ReleaseResponse, 0, len(releases)),
	}

	for _, r := range releases {
		if rr := FromDomainRelease(r); rr != nil {
			resp.Releases = append(resp.Releases, *rr)
		}
	}

	return resp
}
