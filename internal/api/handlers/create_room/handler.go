package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/rooms"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/rooms/models"
)

const (
	msgInvalidClinicID      = "некорректный ID клиники"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "управлять комнатами могут только сотрудники клиники"
	msgClinicNotFound       = "клиника не найдена"
	msgDirectoryUnavailable = "справочный сервис недоступен"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/clinics/{clinicId}/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clinicID, err := handlers.PathInt64(r, "clinicId")
	if err != nil {
		h.logger.Warn("POST /clinics/{id}/rooms - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.RoomInput
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clinics/{id}/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Create(r.Context(), userID, clinicID, &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /clinics/{id}/rooms - Invalid room data: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("POST /clinics/{id}/rooms - Access denied: clinic_id=%d, user_id=%d", clinicID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rooms.ErrClinicNotFound):
			handlers.RespondNotFound(w, msgClinicNotFound)

		case errors.Is(err, rooms.ErrDirectoryUnavailable):
			handlers.RespondBadGateway(w, msgDirectoryUnavailable)

		default:
			h.logger.Error("POST /clinics/{id}/rooms - Failed to create room: clinic_id=%d, error=%v", clinicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clinics/{id}/rooms - Room created: room_id=%d, clinic_id=%d", room.ID, clinicID)
	handlers.RespondJSON(w, http.StatusCreated, room)
}
