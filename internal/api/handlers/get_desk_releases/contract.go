package get_desk_releases

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/service/releases"
)

type ReleaseService interface {
	ListUpcoming(ctx context.Context, deskID int64) (*releases.ReleaseListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
