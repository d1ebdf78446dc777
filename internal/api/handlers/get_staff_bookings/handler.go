package get_staff_bookings

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
)

const msgInvalidStaffID = "некорректный ID сотрудника"

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

// Handle GET /api/v1/staff/{staffId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := uuid.Parse(vars["staffId"])
	if err != nil {
		h.logger.Warn("GET /staff/{id}/bookings - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.service.GetStaffBookings(r.Context(), staffID)
	if err != nil {
		h.logger.Error("GET /staff/{id}/bookings - Failed to get bookings: staff_id=%s, error=%v",
			staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff/{id}/bookings - Retrieved %d bookings: staff_id=%s",
		len(result.Bookings), staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
