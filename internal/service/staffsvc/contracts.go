package staffsvc

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	staffRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/staff"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	Create(ctx context.Context, s *domain.StaffMember) (*domain.StaffMember, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffMember, error)
	Update(ctx context.Context, id uuid.UUID, fields staffRepo.UpdateFields) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
