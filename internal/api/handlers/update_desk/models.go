package update_desk

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/service/desks"
)

// UpdateDeskRequest HTTP request model.
// Закрепление: строка с UUID закрепляет стол за сотрудником,
// пустая строка снимает закрепление, отсутствие поля не меняет его.
type UpdateDeskRequest struct {
	Label       *string `json:"label,omitempty"`
	Type        *string `json:"type,omitempty"`
	ReservedFor *string `json:"reservedForStaffMemberId,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateDeskRequest) ToServiceRequest() (*desks.UpdateDeskRequest, error) {
	req := &desks.UpdateDeskRequest{
		Label: r.Label,
		Type:  r.Type,
	}

	if r.ReservedFor != nil {
		if *r.ReservedFor == "" {
			req.ClearReservedFor = true
		} else {
			staffID, err := uuid.Parse(*r.ReservedFor)
			if err != nil {
				return nil, err
			}
			req.ReservedFor = &staffID
		}
	}

	return req, nil
}
