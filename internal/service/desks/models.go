package desks

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// CreateDeskRequest запрос на создание стола
type CreateDeskRequest struct {
	OfficeID    int64
	Label       string
	Type        string
	ReservedFor *uuid.UUID
}

// UpdateDeskRequest запрос на обновление стола.
// nil-поля остаются без изменений; ClearReservedFor снимает закрепление.
type UpdateDeskRequest struct {
	Label            *string
	Type             *string
	ReservedFor      *uuid.UUID
	ClearReservedFor bool
}

// DeskResponse ответ с данными стола
type DeskResponse struct {
	ID          int64      `json:"id"`
	OfficeID    int64      `json:"officeId"`
	Label       string     `json:"label"`
	Type        string     `json:"type"`
	ReservedFor *uuid.UUID `json:"reservedForStaffMemberId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// DeskListResponse ответ со списком столов
type DeskListResponse struct {
	Desks []DeskResponse `json:"desks"`
}

// FromDomainDesk конвертирует domain модель в DTO
func FromDomainDesk(d *domain.Desk) *DeskResponse {
	if d == nil {
		return nil
	}

	return &DeskResponse{
		ID:          d.ID,
		OfficeID:    d.OfficeID,
		Label:       d.Label,
		Type:        string(d.Type),
		ReservedFor: d.ReservedFor,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// FromDomainDeskList конвертирует список domain моделей в DTO
func FromDomainDeskList(desks []*domain.Desk) *DeskListResponse {
	resp := &DeskListResponse{
		Desks: make([]DeskResponse, 0, len(desks)),
	}

	for _, d := range desks {
		if dr := FromDomainDesk(d); dr != nil {
			resp.Desks = append(resp.Desks, *dr)
		}
	}

	return resp
}
