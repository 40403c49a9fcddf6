package get_clinic_sublease_summary

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/subleases"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/subleases/models"
)

const (
	msgInvalidClinicID      = "некорректный ID клиники"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgForbidden            = "доступ запрещен"
	msgClinicNotFound       = "клиника не найдена"
	msgDirectoryUnavailable = "справочный сервис недоступен"
)

type Handler struct {
	service SubleaseService
	logger  Logger
}

func NewHandler(service SubleaseService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clinics/{clinicId}/subleases/summary
// Query params: from, to (optional, YYYY-MM-DD включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clinicID, err := handlers.PathInt64(r, "clinicId")
	if err != nil {
		h.logger.Warn("GET /clinics/{id}/subleases/summary - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	summary, err := h.service.ClinicSummary(r.Context(), clinicID, &models.SummaryRequest{ActorID: userID, From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, subleases.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, subleases.ErrAccessDenied):
			h.logger.Warn("GET /clinics/{id}/subleases/summary - Access denied: clinic_id=%d, user_id=%d", clinicID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, subleases.ErrClinicNotFound):
			handlers.RespondNotFound(w, msgClinicNotFound)

		case errors.Is(err, subleases.ErrDirectoryUnavailable):
			handlers.RespondBadGateway(w, msgDirectoryUnavailable)

		default:
			h.logger.Error("GET /clinics/{id}/subleases/summary - Failed to build summary: clinic_id=%d, error=%v", clinicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clinics/{id}/subleases/summary - Summary built: clinic_id=%d, from=%s, to=%s", clinicID, summary.From, summary.To)
	handlers.RespondJSON(w, http.StatusOK, summary)
}
