package get_booking_stats

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/bookings/models"
)

const (
	msgInvalidOfficeID  = "некорректный ID офиса"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingParams    = "требуются параметры officeId, startDate и endDate"
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

// Handle GET /api/v1/bookings/stats
//
// Возвращает количество бронирований офиса по каждой дате диапазона.
// Даты без бронирований в ответ не попадают.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	officeIDStr := query.Get("officeId")
	startDateStr := query.Get("startDate")
	endDateStr := query.Get("endDate")

	if officeIDStr == "" || startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /bookings/stats - Missing required params")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	officeID, err := strconv.ParseInt(officeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/stats - Invalid office ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfficeID)
		return
	}

	startDate, err := domain.ParseDate(startDateStr)
	if err != nil {
		h.logger.Warn("GET /bookings/stats - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := domain.ParseDate(endDateStr)
	if err != nil {
		h.logger.Warn("GET /bookings/stats - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetStats(r.Context(), &models.GetStatsRequest{
		OfficeID:  officeID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidDateRange):
			h.logger.Warn("GET /bookings/stats - Invalid date range: office_id=%d", officeID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/stats - Invalid input: office_id=%d, error=%v", officeID, err)
			handlers.RespondBadRequest(w, msgInvalidOfficeID)

		default:
			h.logger.Error("GET /bookings/stats - Failed to get stats: office_id=%d, error=%v", officeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/stats - Retrieved stats for %d dates: office_id=%d",
		len(result.Stats), officeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
