package delete_release

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
	"github.com/m04kA/SMC-DeskBookingService/internal/service/releases"
)

const (
	msgInvalidDeskID = "некорректный ID стола"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound      = "release не найден"
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

// Handle DELETE /api/v1/desks/{deskId}/releases/{date}
//
// Отзыв release восстанавливает защиту закрепленного стола на эту дату.
// Уже созданные бронирования других сотрудников при этом не трогаются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	deskID, err := strconv.ParseInt(vars["deskId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /desks/{id}/releases/{date} - Invalid desk ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDeskID)
		return
	}

	date, err := domain.ParseDate(vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /desks/{id}/releases/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.Delete(r.Context(), deskID, date); err != nil {
		switch {
		case errors.Is(err, releases.ErrReleaseNotFound):
			h.logger.Warn("DELETE /desks/{id}/releases/{date} - Release not found: desk_id=%d, date=%s",
				deskID, vars["date"])
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /desks/{id}/releases/{date} - Failed to delete release: desk_id=%d, error=%v",
				deskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /desks/{id}/releases/{date} - Release deleted: desk_id=%d, date=%s",
		deskID, vars["date"])
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
