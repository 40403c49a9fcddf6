package list_clinic_rooms

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers"
)

const (
	msgInvalidClinicID        = "некорректный ID клиники"
	msgInvalidIncludeInactive = "некорректное значение includeInactive, ожидается true или false"
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

// Handle GET /api/v1/clinics/{clinicId}/rooms
// Query params: includeInactive (optional, default false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clinicID, err := handlers.PathInt64(r, "clinicId")
	if err != nil {
		h.logger.Warn("GET /clinics/{id}/rooms - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	includeInactive := false
	if raw := r.URL.Query().Get("includeInactive"); raw != "" {
		includeInactive, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /clinics/{id}/rooms - Invalid includeInactive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidIncludeInactive)
			return
		}
	}

	rooms, err := h.service.ListByClinic(r.Context(), clinicID, includeInactive)
	if err != nil {
		h.logger.Error("GET /clinics/{id}/rooms - Failed to list rooms: clinic_id=%d, error=%v", clinicID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clinics/{id}/rooms - Rooms retrieved: clinic_id=%d, count=%d", clinicID, len(rooms.Rooms))
	handlers.RespondJSON(w, http.StatusOK, rooms)
}
