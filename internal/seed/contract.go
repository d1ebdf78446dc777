package seed

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// DeskRepository интерфейс репозитория столов
type DeskRepository interface {
	Create(ctx context.Context, desk *domain.Desk) (*domain.Desk, error)
	ListByOffice(ctx context.Context, officeID int64) ([]*domain.Desk, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	Create(ctx context.Context, s *domain.StaffMember) (*domain.StaffMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
