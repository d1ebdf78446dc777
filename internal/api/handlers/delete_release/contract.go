package delete_release

import (
	"context"
	"time"
)

type ReleaseService interface {
	Delete(ctx context.Context, deskID int64, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
