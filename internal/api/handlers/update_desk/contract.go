package update_desk

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/service/desks"
)

type DeskService interface {
	Update(ctx context.Context, id int64, req *desks.UpdateDeskRequest) (*desks.DeskResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
