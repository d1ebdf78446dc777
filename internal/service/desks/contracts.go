package desks

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	deskRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/desk"
)

// DeskRepository интерфейс репозитория столов
type DeskRepository interface {
	Create(ctx context.Context, d *domain.Desk) (*domain.Desk, error)
	GetByID(ctx context.Context, id int64) (*domain.Desk, error)
	GetByReservedFor(ctx context.Context, staffID uuid.UUID) (*domain.Desk, error)
	ListByOffice(ctx context.Context, officeID int64) ([]*domain.Desk, error)
	Update(ctx context.Context, id int64, fields deskRepo.UpdateFields) error
	SetReservedFor(ctx context.Context, id int64, staffID *uuid.UUID) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований (каскадное удаление)
type BookingRepository interface {
	DeleteByDeskID(ctx context.Context, deskID int64) error
}

// ReleaseRepository интерфейс реестра releases (каскадное удаление)
type ReleaseRepository interface {
	DeleteByDeskID(ctx context.Context, deskID int64) error
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StaffMember, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
