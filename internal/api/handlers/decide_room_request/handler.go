package decide_room_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduling/internal/api/middleware"
	decideRoomRequest "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/decide_room_request"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "запись не найдена"
	msgNotPending           = "запрос комнаты уже обработан"
	msgForbidden            = "решение может принять только сотрудник клиники"
	msgInvalidNewRoom       = "новая комната недоступна"
	msgDirectoryUnavailable = "справочный сервис недоступен"
)

type Handler struct {
	useCase DecideRoomRequestUseCase
	logger  Logger
}

func NewHandler(useCase DecideRoomRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/room-decision
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathInt64(r, "appointmentId")
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/room-decision - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments/{id}/room-decision - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RoomDecisionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/room-decision - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, appointmentID))
	if err != nil {
		switch {
		case errors.Is(err, decideRoomRequest.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, decideRoomRequest.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, decideRoomRequest.ErrRequestNotPending):
			h.logger.Warn("POST /appointments/{id}/room-decision - Not pending: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgNotPending)

		case errors.Is(err, decideRoomRequest.ErrForbidden):
			h.logger.Warn("POST /appointments/{id}/room-decision - Forbidden: appointment_id=%d, user_id=%d", appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, decideRoomRequest.ErrInvalidNewRoom):
			handlers.RespondBadRequest(w, msgInvalidNewRoom)

		case errors.Is(err, decideRoomRequest.ErrDirectoryUnavailable):
			handlers.RespondBadGateway(w, msgDirectoryUnavailable)

		default:
			h.logger.Error("POST /appointments/{id}/room-decision - Failed to apply decision: appointment_id=%d, action=%s, error=%v",
				appointmentID, req.Action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/room-decision - Decision applied: appointment_id=%d, action=%s, sublease=%t",
		appointmentID, req.Action, result.Sublease != nil)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
