package update_desk

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/desks"
)

const (
	msgInvalidDeskID      = "некорректный ID стола"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidInput       = "некорректные параметры стола"
	msgDeskNotFound       = "Desk not found"
	msgStaffNotFound      = "Staff member not found"
	msgStaffOwnsDesk      = "за сотрудником уже закреплен другой стол"
)

type Handler struct {
	service DeskService
	logger  Logger
}

func NewHandler(service DeskService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/desks/{deskId}
//
// Смена закрепления видна движку конфликтов со следующего запроса
// на бронирование, существующие бронирования не пересматриваются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	deskID, err := strconv.ParseInt(vars["deskId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /desks/{id} - Invalid desk ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDeskID)
		return
	}

	var req UpdateDeskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /desks/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /desks/{id} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.service.Update(r.Context(), deskID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, desks.ErrDeskNotFound):
			h.logger.Warn("PUT /desks/{id} - Desk not found: desk_id=%d", deskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		case errors.Is(err, desks.ErrStaffNotFound):
			h.logger.Warn("PUT /desks/{id} - Staff member not found: desk_id=%d", deskID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, desks.ErrStaffAlreadyOwnsDesk):
			h.logger.Warn("PUT /desks/{id} - Staff member already owns a desk: desk_id=%d", deskID)
			handlers.RespondError(w, http.StatusConflict, msgStaffOwnsDesk)

		case errors.Is(err, desks.ErrInvalidInput):
			h.logger.Warn("PUT /desks/{id} - Invalid input: desk_id=%d: %v", deskID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /desks/{id} - Failed to update desk: desk_id=%d, error=%v", deskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /desks/{id} - Desk updated: desk_id=%d", deskID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
