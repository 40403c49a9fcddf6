package get_room_requests

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/appointments"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/appointments/models"
)

const (
	msgInvalidClinicID      = "некорректный ID клиники"
	msgInvalidStatus        = "статус должен быть pending или approved"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
	msgClinicNotFound       = "клиника не найдена"
	msgDirectoryUnavailable = "справочный сервис недоступен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clinics/{clinicId}/room-requests
// Query params: status (optional, pending по умолчанию)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clinicID, err := handlers.PathInt64(r, "clinicId")
	if err != nil {
		h.logger.Warn("GET /clinics/{id}/room-requests - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ListRoomRequests(r.Context(), &models.ListRoomRequestsRequest{
		ActorID:  userID,
		ClinicID: clinicID,
		Status:   handlers.QueryString(r, "status"),
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /clinics/{id}/room-requests - Access denied: clinic_id=%d, user_id=%d", clinicID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrClinicNotFound):
			handlers.RespondNotFound(w, msgClinicNotFound)

		case errors.Is(err, appointments.ErrDirectoryUnavailable):
			handlers.RespondBadGateway(w, msgDirectoryUnavailable)

		default:
			h.logger.Error("GET /clinics/{id}/room-requests - Failed to list requests: clinic_id=%d, error=%v", clinicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clinics/{id}/room-requests - Requests retrieved: clinic_id=%d, count=%d", clinicID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
