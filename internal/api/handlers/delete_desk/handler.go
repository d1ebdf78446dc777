package delete_desk

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/desks"
)

const (
	msgInvalidDeskID = "некорректный ID стола"
	msgDeskNotFound  = "Desk not found"
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

// Handle DELETE /api/v1/desks/{deskId}
//
// Удаление стола каскадно удаляет его бронирования и releases.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	deskID, err := strconv.ParseInt(vars["deskId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /desks/{id} - Invalid desk ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDeskID)
		return
	}

	if err := h.service.Delete(r.Context(), deskID); err != nil {
		switch {
		case errors.Is(err, desks.ErrDeskNotFound):
			h.logger.Warn("DELETE /desks/{id} - Desk not found: desk_id=%d", deskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		default:
			h.logger.Error("DELETE /desks/{id} - Failed to delete desk: desk_id=%d, error=%v", deskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /desks/{id} - Desk deleted: desk_id=%d", deskID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
