package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-DeskBookingService/internal/infra/storage/booking"
	createBooking "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-DeskBookingService/pkg/ptr"
)

// UseCase use case обновления бронирования.
//
// Исходная система заменяла desk/date/slot без повторной проверки конфликтов,
// что позволяло обновлением создать двойное бронирование. Здесь обновление
// прогоняет кандидата через ту же процедуру проверки, что и создание,
// исключая из проверок само обновляемое бронирование.
type UseCase struct {
	bookingRepo BookingRepository
	checker     ConflictChecker
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	checker ConflictChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		checker:     checker,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет обновление бронирования в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking id=%d", req.BookingID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.IsActive() {
			uc.logger.Warn("UpdateBooking: booking id=%d is %s", booking.ID, booking.Status)
			return ErrTerminalStatus
		}

		// Собираем целевое состояние бронирования
		target := *booking
		if req.DeskID != nil {
			target.DeskID = *req.DeskID
		}
		if req.Date != nil {
			target.BookingDate = domain.DateOnly(*req.Date)
		}
		if req.Slot != nil {
			target.Slot = *req.Slot
		}
		if req.Status != nil {
			target.Status = *req.Status
		}

		// Повторная проверка конфликтов нужна только если меняется
		// расположение бронирования, а не один лишь статус
		if placementChanged(booking, &target) && target.IsActive() {
			candidate := createBooking.Candidate{
				DeskID:           target.DeskID,
				StaffMemberID:    target.StaffMemberID,
				Date:             target.BookingDate,
				Slot:             target.Slot,
				ExcludeBookingID: booking.ID,
			}
			if err := uc.checker.Check(txCtx, candidate); err != nil {
				uc.logger.Warn("UpdateBooking: conflict re-validation failed for booking id=%d: %v",
					booking.ID, err)
				return err
			}
		}

		fields := bookingRepo.UpdateFields{
			DeskID: req.DeskID,
			Slot:   req.Slot,
			Status: req.Status,
		}
		if req.Date != nil {
			fields.BookingDate = ptr.Ptr(domain.DateOnly(*req.Date))
		}

		if err := uc.bookingRepo.Update(txCtx, booking.ID, fields); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		updated, err := uc.bookingRepo.GetByID(txCtx, booking.ID)
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to re-read booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to re-read booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)
	return FromDomainBooking(result), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.DeskID == nil && req.Date == nil && req.Slot == nil && req.Status == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.DeskID != nil && *req.DeskID <= 0 {
		return fmt.Errorf("%w: deskID must be positive", ErrInvalidInput)
	}

	if req.Slot != nil && !req.Slot.IsValid() {
		return fmt.Errorf("%w: invalid slot %q", ErrInvalidInput, *req.Slot)
	}

	if req.Status != nil {
		valid := false
		for _, s := range domain.ValidStatuses {
			if *req.Status == s {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
	}

	return nil
}

// placementChanged проверяет, меняет ли обновление стол, дату или слот
func placementChanged(current, target *domain.Booking) bool {
	return current.DeskID != target.DeskID ||
		!current.BookingDate.Equal(target.BookingDate) ||
		current.Slot != target.Slot
}
