package update_booking

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_booking"
	updateBooking "github.com/m04kA/SMC-DeskBookingService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgNotFound           = "бронирование не найдено"
	msgTerminalStatus     = "отмененное или отклоненное бронирование нельзя изменить"
	msgInvalidInput       = "некорректные параметры бронирования"

	// Тексты отказов движка конфликтов совпадают с созданием бронирования
	msgDeskNotFound       = "Desk not found"
	msgDeskReserved       = "This desk is reserved for another staff member."
	msgOwnerMustRelease   = "You have a reserved desk for this date. Please release it before booking another desk."
	msgStaffAlreadyBooked = "Staff member already has a booking for this date."
	msgSlotConflictFmt    = "Desk is already booked for %s on this date."
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
//
// Перенос бронирования на другой стол, дату или слот проходит через
// тот же движок конфликтов, что и создание, исключая само бронирование
// из проверок.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var slotConflict *createBooking.SlotConflictError

		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrTerminalStatus):
			h.logger.Warn("PUT /bookings/{id} - Booking in terminal status: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgTerminalStatus)

		case errors.Is(err, createBooking.ErrDeskNotFound):
			h.logger.Warn("PUT /bookings/{id} - Desk not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		case errors.Is(err, createBooking.ErrDeskReservedForOther):
			h.logger.Warn("PUT /bookings/{id} - Desk reserved for another staff member: booking_id=%d", bookingID)
			handlers.RespondForbidden(w, msgDeskReserved)

		case errors.Is(err, createBooking.ErrOwnerMustRelease):
			h.logger.Warn("PUT /bookings/{id} - Requester must release own desk: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgOwnerMustRelease)

		case errors.Is(err, createBooking.ErrStaffAlreadyBooked):
			h.logger.Warn("PUT /bookings/{id} - Staff member already booked: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgStaffAlreadyBooked)

		case errors.As(err, &slotConflict):
			h.logger.Warn("PUT /bookings/{id} - Slot conflict: booking_id=%d, conflicting=%s",
				bookingID, slotConflict.ConflictingSlot)
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf(msgSlotConflictFmt, slotConflict.ConflictingSlot))

		case errors.Is(err, updateBooking.ErrInvalidStatus),
			errors.Is(err, updateBooking.ErrInvalidInput),
			errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking_id=%d: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
