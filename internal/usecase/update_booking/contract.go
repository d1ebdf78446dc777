package update_booking

import (
	"context"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/booking"
	createBooking "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, id int64, fields bookingRepo.UpdateFields) error
}

// ConflictChecker процедура проверки конфликтов движка бронирования.
// Обновление переиспользует её, исключая само обновляемое бронирование.
type ConflictChecker interface {
	Check(ctx context.Context, c createBooking.Candidate) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
