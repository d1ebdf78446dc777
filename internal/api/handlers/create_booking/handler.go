package create_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgMissingStaffID     = "отсутствует ID сотрудника"
	msgInvalidInput       = "некорректные параметры бронирования"

	// Тексты отказов движка конфликтов фиксированы продуктом,
	// клиенты показывают их пользователю как есть
	msgDeskNotFound       = "Desk not found"
	msgStaffNotFound      = "Staff member not found"
	msgStaffInactive      = "Staff member is not active"
	msgDeskReserved       = "This desk is reserved for another staff member."
	msgOwnerMustRelease   = "You have a reserved desk for this date. Please release it before booking another desk."
	msgStaffAlreadyBooked = "Staff member already has a booking for this date."
	msgSlotConflictFmt    = "Desk is already booked for %s on this date."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Отказы движка конфликтов в порядке проверки
		var slotConflict *createBooking.SlotConflictError

		switch {
		case errors.Is(err, createBooking.ErrDeskNotFound):
			h.logger.Warn("POST /bookings - Desk not found: desk_id=%d", req.DeskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		case errors.Is(err, createBooking.ErrStaffNotFound):
			h.logger.Warn("POST /bookings - Staff member not found: staff_id=%s", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createBooking.ErrStaffInactive):
			h.logger.Warn("POST /bookings - Staff member inactive: staff_id=%s", staffID)
			handlers.RespondForbidden(w, msgStaffInactive)

		case errors.Is(err, createBooking.ErrDeskReservedForOther):
			h.logger.Warn("POST /bookings - Desk reserved for another staff member: desk_id=%d, staff_id=%s",
				req.DeskID, staffID)
			handlers.RespondForbidden(w, msgDeskReserved)

		case errors.Is(err, createBooking.ErrOwnerMustRelease):
			h.logger.Warn("POST /bookings - Requester must release own desk: staff_id=%s, date=%s",
				staffID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgOwnerMustRelease)

		case errors.Is(err, createBooking.ErrStaffAlreadyBooked):
			h.logger.Warn("POST /bookings - Staff member already booked: staff_id=%s, date=%s",
				staffID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgStaffAlreadyBooked)

		case errors.As(err, &slotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: desk_id=%d, date=%s, slot=%s, conflicting=%s",
				req.DeskID, req.Date, req.Slot, slotConflict.ConflictingSlot)
			handlers.RespondError(w, http.StatusConflict,
				fmt.Sprintf(msgSlotConflictFmt, slotConflict.ConflictingSlot))

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: desk_id=%d, slot=%q: %v", req.DeskID, req.Slot, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: desk_id=%d, staff_id=%s, error=%v",
				req.DeskID, staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, desk_id=%d, staff_id=%s",
		result.ID, req.DeskID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
