package get_clinic_subleases

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
	msgInvalidPagination    = "некорректные параметры page или perPage"
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

// Handle GET /api/v1/clinics/{clinicId}/subleases
// Query params: status (optional), page (default 1), perPage (default 20, max 100)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clinicID, err := handlers.PathInt64(r, "clinicId")
	if err != nil {
		h.logger.Warn("GET /clinics/{id}/subleases - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	page, err := handlers.QueryInt(r, "page")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}
	perPage, err := handlers.QueryInt(r, "perPage")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListRequest{
		ActorID:  userID,
		ClinicID: clinicID,
		Status:   handlers.QueryString(r, "status"),
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		switch {
		case errors.Is(err, subleases.ErrInvalidInput):
			h.logger.Warn("GET /clinics/{id}/subleases - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, subleases.ErrAccessDenied):
			h.logger.Warn("GET /clinics/{id}/subleases - Access denied: clinic_id=%d, user_id=%d", clinicID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, subleases.ErrClinicNotFound):
			handlers.RespondNotFound(w, msgClinicNotFound)

		case errors.Is(err, subleases.ErrDirectoryUnavailable):
			handlers.RespondBadGateway(w, msgDirectoryUnavailable)

		default:
			h.logger.Error("GET /clinics/{id}/subleases - Failed to list subleases: clinic_id=%d, error=%v", clinicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clinics/{id}/subleases - Subleases retrieved: clinic_id=%d, count=%d, total=%d",
		clinicID, len(result.Subleases), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
