package create_staff

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/service/staffsvc"
)

type StaffService interface {
	Create(ctx context.Context, req *staffsvc.CreateStaffRequest) (*staffsvc.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
