package get_psychologist_sublease_summary

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduling/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/subleases"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/subleases/models"
)

const (
	msgInvalidPsychologistID = "некорректный ID психолога"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "психолог видит только свою сводку"
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

// Handle GET /api/v1/psychologists/{psychologistId}/subleases/summary
// Query params: from, to (optional, YYYY-MM-DD включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	psychologistID, err := handlers.PathInt64(r, "psychologistId")
	if err != nil {
		h.logger.Warn("GET /psychologists/{id}/subleases/summary - Invalid psychologist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPsychologistID)
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

	summary, err := h.service.PsychologistSummary(r.Context(), psychologistID, &models.SummaryRequest{ActorID: userID, From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, subleases.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, subleases.ErrAccessDenied):
			h.logger.Warn("GET /psychologists/{id}/subleases/summary - Access denied: psychologist_id=%d, user_id=%d",
				psychologistID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /psychologists/{id}/subleases/summary - Failed to build summary: psychologist_id=%d, error=%v",
				psychologistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /psychologists/{id}/subleases/summary - Summary built: psychologist_id=%d", psychologistID)
	handlers.RespondJSON(w, http.StatusOK, summary)
}
