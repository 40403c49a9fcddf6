package delete_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/rooms"
)

const (
	msgInvalidRoomID        = "некорректный ID комнаты"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "комната не найдена"
	msgForbidden            = "управлять комнатами могут только сотрудники клиники"
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

// Handle DELETE /api/v1/rooms/{roomId}
// Используемая комната не удаляется, а выключается (deactivated=true)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("DELETE /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Delete(r.Context(), userID, roomID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrAccessDenied), errors.Is(err, rooms.ErrClinicNotFound):
			h.logger.Warn("DELETE /rooms/{id} - Access denied: room_id=%d, user_id=%d", roomID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rooms.ErrDirectoryUnavailable):
			handlers.RespondBadGateway(w, msgDirectoryUnavailable)

		default:
			h.logger.Error("DELETE /rooms/{id} - Failed to delete room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/{id} - room_id=%d, deleted=%t, deactivated=%t", roomID, result.Deleted, result.Deactivated)
	handlers.RespondJSON(w, http.StatusOK, result)
}
