package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

var (
	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("create_booking: desk not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("create_booking: staff member not found")

	// ErrStaffInactive возвращается, когда сотрудник деактивирован
	ErrStaffInactive = errors.New("create_booking: staff member is not active")

	// ErrDeskReservedForOther возвращается при попытке забронировать стол,
	// закрепленный за другим сотрудником и не освобожденный на эту дату
	ErrDeskReservedForOther = errors.New("create_booking: desk is reserved for another staff member")

	// ErrOwnerMustRelease возвращается, когда у заявителя есть закрепленный стол,
	// не освобожденный на запрошенную дату. Владелец обязан сначала освободить
	// свой стол, даже если бронирует другой.
	ErrOwnerMustRelease = errors.New("create_booking: staff member must release their reserved desk first")

	// ErrStaffAlreadyBooked возвращается, когда у сотрудника уже есть активное
	// бронирование на эту дату, независимо от стола и слота
	ErrStaffAlreadyBooked = errors.New("create_booking: staff member already has a booking for this date")

	// ErrSlotConflict возвращается, когда стол уже забронирован на
	// пересекающийся слот в эту дату
	ErrSlotConflict = errors.New("create_booking: desk is already booked for an overlapping slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// SlotConflictError ошибка пересечения слотов с деталями конфликта.
// Матчится errors.Is(err, ErrSlotConflict); конфликтующий слот нужен
// HTTP слою для текста ответа.
type SlotConflictError struct {
	ConflictingSlot domain.Slot
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("create_booking: desk is already booked for %s on this date", e.ConflictingSlot)
}

func (e *SlotConflictError) Unwrap() error {
	return ErrSlotConflict
}
