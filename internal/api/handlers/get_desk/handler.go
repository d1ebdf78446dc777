package get_desk

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/desks"
)

const (
	msgInvalidDeskID   = "некорректный ID стола"
	msgInvalidOfficeID = "некорректный ID офиса"
	msgDeskNotFound    = "Desk not found"
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

// Handle GET /api/v1/desks/{deskId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	deskID, err := strconv.ParseInt(vars["deskId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /desks/{id} - Invalid desk ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDeskID)
		return
	}

	result, err := h.service.GetByID(r.Context(), deskID)
	if err != nil {
		switch {
		case errors.Is(err, desks.ErrDeskNotFound):
			h.logger.Warn("GET /desks/{id} - Desk not found: desk_id=%d", deskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		default:
			h.logger.Error("GET /desks/{id} - Failed to get desk: desk_id=%d, error=%v", deskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /desks/{id} - Desk retrieved: desk_id=%d", deskID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/offices/{officeId}/desks
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	officeID, err := strconv.ParseInt(vars["officeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /offices/{id}/desks - Invalid office ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfficeID)
		return
	}

	result, err := h.service.ListByOffice(r.Context(), officeID)
	if err != nil {
		switch {
		case errors.Is(err, desks.ErrInvalidInput):
			h.logger.Warn("GET /offices/{id}/desks - Invalid input: office_id=%d: %v", officeID, err)
			handlers.RespondBadRequest(w, msgInvalidOfficeID)

		default:
			h.logger.Error("GET /offices/{id}/desks - Failed to list desks: office_id=%d, error=%v",
				officeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /offices/{id}/desks - Retrieved %d desks: office_id=%d", len(result.Desks), officeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
