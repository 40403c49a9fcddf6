package check_sublease_applicability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/rooms"
)

const (
	msgInvalidRoomID        = "некорректный ID комнаты"
	msgInvalidPatientID     = "некорректный или отсутствующий patientId"
	msgInvalidClinicID      = "некорректный clinicId"
	msgRoomNotFound         = "комната не найдена"
	msgPatientNotFound      = "пациент не найден"
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

// Handle GET /api/v1/rooms/{roomId}/sublease-applicability
// Query params: patientId (required), clinicId (optional, default - клиника комнаты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/sublease-applicability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	patientID, err := handlers.QueryInt64(r, "patientId")
	if err != nil || patientID == nil {
		h.logger.Warn("GET /rooms/{id}/sublease-applicability - Invalid patient ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}

	clinicID, err := handlers.QueryInt64(r, "clinicId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/sublease-applicability - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	result, err := h.service.CheckSubleaseApplicability(r.Context(), roomID, *patientID, clinicID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/sublease-applicability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, rooms.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, rooms.ErrPatientNotFound):
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, rooms.ErrDirectoryUnavailable):
			h.logger.Error("GET /rooms/{id}/sublease-applicability - Directory unavailable: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadGateway(w, msgDirectoryUnavailable)

		default:
			h.logger.Error("GET /rooms/{id}/sublease-applicability - Failed to check: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/sublease-applicability - room_id=%d, patient_id=%d, applies=%t",
		roomID, *patientID, result.Applies)
	handlers.RespondJSON(w, http.StatusOK, result)
}
