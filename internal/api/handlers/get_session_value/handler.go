package get_session_value

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers"
	resolveSessionValue "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/resolve_session_value"
)

const (
	msgInvalidPsychologistID = "некорректный ID психолога"
	msgPsychologistNotFound  = "психолог не найден"
	msgDirectoryUnavailable  = "справочный сервис недоступен"
)

type Handler struct {
	useCase ResolveSessionValueUseCase
	logger  Logger
}

func NewHandler(useCase ResolveSessionValueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/psychologists/{psychologistId}/default-session-value
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	psychologistID, err := handlers.PathInt64(r, "psychologistId")
	if err != nil {
		h.logger.Warn("GET /psychologists/{id}/default-session-value - Invalid psychologist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPsychologistID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &resolveSessionValue.Request{PsychologistID: psychologistID})
	if err != nil {
		switch {
		case errors.Is(err, resolveSessionValue.ErrPsychologistNotFound):
			h.logger.Warn("GET /psychologists/{id}/default-session-value - Psychologist not found: psychologist_id=%d", psychologistID)
			handlers.RespondNotFound(w, msgPsychologistNotFound)

		case errors.Is(err, resolveSessionValue.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPsychologistID)

		case errors.Is(err, resolveSessionValue.ErrDirectoryUnavailable):
			h.logger.Error("GET /psychologists/{id}/default-session-value - Directory unavailable: psychologist_id=%d, error=%v",
				psychologistID, err)
			handlers.RespondBadGateway(w, msgDirectoryUnavailable)

		default:
			h.logger.Error("GET /psychologists/{id}/default-session-value - Failed to resolve value: psychologist_id=%d, error=%v",
				psychologistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /psychologists/{id}/default-session-value - Value resolved: psychologist_id=%d, source=%s",
		psychologistID, result.Source)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
