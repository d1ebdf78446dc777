package update_staff

import "github.com/m04kA/SMC-DeskBookingService/internal/service/staffsvc"

// UpdateStaffRequest HTTP request model.
// Пропущенные поля остаются без изменений; active=false деактивирует
// сотрудника, после чего движок бронирования отклоняет его запросы.
type UpdateStaffRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Active *bool   `json:"active,omitempty"`
	Role   *string `json:"role,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStaffRequest) ToServiceRequest() *staffsvc.UpdateStaffRequest {
	return &staffsvc.UpdateStaffRequest{
		Name:   r.Name,
		Email:  r.Email,
		Active: r.Active,
		Role:   r.Role,
	}
}
