package get_staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/service/staffsvc"
)

type StaffService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*staffsvc.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
