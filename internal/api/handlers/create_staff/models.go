package create_staff

import "github.com/m04kA/SMC-DeskBookingService/internal/service/staffsvc"

// CreateStaffRequest HTTP request model
type CreateStaffRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // employee | manager | owner | admin
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateStaffRequest) ToServiceRequest() *staffsvc.CreateStaffRequest {
	return &staffsvc.CreateStaffRequest{
		Name:  r.Name,
		Email: r.Email,
		Role:  r.Role,
	}
}
