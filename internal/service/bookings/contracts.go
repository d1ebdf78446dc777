package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByStaffID(ctx context.Context, staffID uuid.UUID) ([]*domain.Booking, error)
	GetByOfficeWithFilter(ctx context.Context, filter domain.OfficeBookingsFilter) ([]*domain.Booking, error)
	DailyCounts(ctx context.Context, officeID int64, startDate, endDate time.Time) ([]domain.DailyCount, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
