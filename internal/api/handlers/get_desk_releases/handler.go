package get_desk_releases

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/releases"
)

const (
	msgInvalidDeskID = "некорректный ID стола"
	msgDeskNotFound  = "Desk not found"
)

type Handler struct {
	service ReleaseService
	logger  Logger
}

func NewHandler(service ReleaseService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/desks/{deskId}/releases
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	deskID, err := strconv.ParseInt(vars["deskId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /desks/{id}/releases - Invalid desk ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDeskID)
		return
	}

	result, err := h.service.ListUpcoming(r.Context(), deskID)
	if err != nil {
		switch {
		case errors.Is(err, releases.ErrDeskNotFound):
			h.logger.Warn("GET /desks/{id}/releases - Desk not found: desk_id=%d", deskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		default:
			h.logger.Error("GET /desks/{id}/releases - Failed to list releases: desk_id=%d, error=%v",
				deskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /desks/{id}/releases - Retrieved %d releases: desk_id=%d",
		len(result.Releases), deskID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
