package create_desk

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/service/desks"
)

type DeskService interface {
	Create(ctx context.Context, req *desks.CreateDeskRequest) (*desks.DeskResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
