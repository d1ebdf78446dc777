package releases

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// ReleaseRepository интерфейс реестра releases
type ReleaseRepository interface {
	ListUpcoming(ctx context.Context, deskID int64, from time.Time) ([]*domain.DeskRelease, error)
	Delete(ctx context.Context, deskID int64, date time.Time) error
}

// DeskRepository интерфейс репозитория столов
type DeskRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Desk, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
