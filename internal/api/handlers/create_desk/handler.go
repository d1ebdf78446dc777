package create_desk

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/desks"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidInput       = "некорректные параметры стола"
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

// Handle POST /api/v1/desks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateDeskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /desks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /desks - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, desks.ErrStaffNotFound):
			h.logger.Warn("POST /desks - Staff member not found: office_id=%d", req.OfficeID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, desks.ErrStaffAlreadyOwnsDesk):
			h.logger.Warn("POST /desks - Staff member already owns a desk: office_id=%d", req.OfficeID)
			handlers.RespondError(w, http.StatusConflict, msgStaffOwnsDesk)

		case errors.Is(err, desks.ErrInvalidInput):
			h.logger.Warn("POST /desks - Invalid input: office_id=%d: %v", req.OfficeID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /desks - Failed to create desk: office_id=%d, error=%v", req.OfficeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /desks - Desk created: desk_id=%d, office_id=%d", result.ID, result.OfficeID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
