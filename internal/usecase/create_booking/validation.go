package create_booking

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DeskID <= 0 {
		return fmt.Errorf("%w: deskID must be positive", ErrInvalidInput)
	}

	if req.StaffMemberID == uuid.Nil {
		return fmt.Errorf("%w: staffMemberID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Slot.IsValid() {
		return fmt.Errorf("%w: invalid slot %q", ErrInvalidInput, req.Slot)
	}

	return nil
}

// findSlotConflict ищет активное бронирование стола, чей слот пересекается
// с кандидатом. FullDay пересекается со всем; Morning и Afternoon - только
// сами с собой. Бронирование excludeID пропускается.
func findSlotConflict(slot domain.Slot, excludeID int64, bookings []*domain.Booking) *domain.Booking {
	for _, b := range bookings {
		if b.ID == excludeID {
			continue
		}
		// Репозиторий уже отфильтровал неактивные статусы
		if b.Slot.Overlaps(slot) {
			return b
		}
	}
	return nil
}
