package get_office_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/bookings"
)

const (
	msgInvalidOfficeID  = "некорректный ID офиса"
	msgInvalidQuery     = "некорректные параметры фильтра"
	msgInvalidDateRange = "дата начала не может быть позже даты окончания"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/offices/{officeId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	officeID, err := strconv.ParseInt(vars["officeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /offices/{id}/bookings - Invalid office ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfficeID)
		return
	}

	req, err := ParseQuery(officeID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /offices/{id}/bookings - Invalid query: office_id=%d, error=%v", officeID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetOfficeBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidDateRange):
			h.logger.Warn("GET /offices/{id}/bookings - Invalid date range: office_id=%d", officeID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /offices/{id}/bookings - Invalid input: office_id=%d, error=%v", officeID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /offices/{id}/bookings - Failed to get bookings: office_id=%d, error=%v",
				officeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /offices/{id}/bookings - Retrieved %d bookings: office_id=%d",
		len(result.Bookings), officeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
