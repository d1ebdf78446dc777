package create_desk

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/service/desks"
)

// CreateDeskRequest HTTP request model
type CreateDeskRequest struct {
	OfficeID    int64   `json:"officeId"`
	Label       string  `json:"label"`
	Type        string  `json:"type"` // standard | standing | high_seat | meeting_room
	ReservedFor *string `json:"reservedForStaffMemberId,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateDeskRequest) ToServiceRequest() (*desks.CreateDeskRequest, error) {
	req := &desks.CreateDeskRequest{
		OfficeID: r.OfficeID,
		Label:    r.Label,
		Type:     r.Type,
	}

	if r.ReservedFor != nil {
		staffID, err := uuid.Parse(*r.ReservedFor)
		if err != nil {
			return nil, err
		}
		req.ReservedFor = &staffID
	}

	return req, nil
}
