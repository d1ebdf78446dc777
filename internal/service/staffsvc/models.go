package staffsvc

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// CreateStaffRequest запрос на создание сотрудника
type CreateStaffRequest struct {
	Name  string
	Email string
	Role  string
}

// UpdateStaffRequest запрос на обновление сотрудника.
// nil-поля остаются без изменений; Active=false деактивирует.
type UpdateStaffRequest struct {
	Name   *string
	Email  *string
	Active *bool
	Role   *string
}

// StaffResponse ответ с данными сотрудника
type StaffResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Active bool      `json:"active"`
	Role   string    `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainStaff конвертирует domain модель в DTO
func FromDomainStaff(s *domain.StaffMember) *StaffResponse {
	if s == nil {
		return nil
	}

	return &StaffResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Active:    s.Active,
		Role:      string(s.Role),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
