package mark_sublease_paid

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/subleases"
)

const (
	msgInvalidSubleaseID    = "некорректный ID субаренды"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "субаренда не найдена"
	msgForbidden            = "отметить оплату может только сотрудник клиники"
	msgCannotMarkPaid       = "оплаченной можно отметить только ожидающую оплаты субаренду"
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

// Handle PATCH /api/v1/subleases/{subleaseId}/paid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	subleaseID, err := handlers.PathInt64(r, "subleaseId")
	if err != nil {
		h.logger.Warn("PATCH /subleases/{id}/paid - Invalid sublease ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubleaseID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	sublease, err := h.service.MarkPaid(r.Context(), userID, subleaseID)
	if err != nil {
		switch {
		case errors.Is(err, subleases.ErrSubleaseNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, subleases.ErrAccessDenied), errors.Is(err, subleases.ErrClinicNotFound):
			h.logger.Warn("PATCH /subleases/{id}/paid - Access denied: sublease_id=%d, user_id=%d", subleaseID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, subleases.ErrCannotMarkPaid):
			h.logger.Warn("PATCH /subleases/{id}/paid - Not pending: sublease_id=%d", subleaseID)
			handlers.RespondConflict(w, msgCannotMarkPaid)

		case errors.Is(err, subleases.ErrDirectoryUnavailable):
			handlers.RespondBadGateway(w, msgDirectoryUnavailable)

		default:
			h.logger.Error("PATCH /subleases/{id}/paid - Failed to mark paid: sublease_id=%d, error=%v", subleaseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /subleases/{id}/paid - Sublease marked paid: sublease_id=%d, user_id=%d", subleaseID, userID)
	handlers.RespondJSON(w, http.StatusOK, sublease)
}
