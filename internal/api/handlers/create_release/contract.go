package create_release

import (
	"context"

	createRelease "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_release"
)

type CreateReleaseUseCase interface {
	Execute(ctx context.Context, req *createRelease.Request) (*createRelease.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
