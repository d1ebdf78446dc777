package create_release

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskBookingService/internal/api/handlers"
	createRelease "github.com/m04kA/SMC-DeskBookingService/internal/usecase/create_release"
)

const (
	msgInvalidDeskID      = "некорректный ID стола"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDeskNotFound       = "Desk not found"
	msgDeskNotReserved    = "стол не закреплен за сотрудником"
)

type Handler struct {
	useCase CreateReleaseUseCase
	logger  Logger
}

func NewHandler(useCase CreateReleaseUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/desks/{deskId}/releases
//
// Операция идемпотентна: повторное освобождение той же даты возвращает
// существующий release с кодом 201.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	deskID, err := strconv.ParseInt(vars["deskId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /desks/{id}/releases - Invalid desk ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDeskID)
		return
	}

	var req CreateReleaseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /desks/{id}/releases - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(deskID)
	if err != nil {
		h.logger.Warn("POST /desks/{id}/releases - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRelease.ErrDeskNotFound):
			h.logger.Warn("POST /desks/{id}/releases - Desk not found: desk_id=%d", deskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		case errors.Is(err, createRelease.ErrDeskNotReserved):
			h.logger.Warn("POST /desks/{id}/releases - Desk has no permanent reservation: desk_id=%d", deskID)
			handlers.RespondBadRequest(w, msgDeskNotReserved)

		case errors.Is(err, createRelease.ErrInvalidInput):
			h.logger.Warn("POST /desks/{id}/releases - Invalid input: desk_id=%d: %v", deskID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /desks/{id}/releases - Failed to create release: desk_id=%d, error=%v",
				deskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /desks/{id}/releases - Release created: release_id=%d, desk_id=%d, date=%s",
		result.ID, deskID, req.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
