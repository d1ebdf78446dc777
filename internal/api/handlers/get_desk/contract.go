package get_desk

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/service/desks"
)

type DeskService interface {
	GetByID(ctx context.Context, id int64) (*desks.DeskResponse, error)
	ListByOffice(ctx context.Context, officeID int64) (*desks.DeskListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
