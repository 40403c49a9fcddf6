package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/get_available_slots"
)

const (
	msgInvalidPsychologistID = "некорректный ID психолога"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/psychologists/{psychologistId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	psychologistID, err := handlers.PathInt64(r, "psychologistId")
	if err != nil {
		h.logger.Warn("GET /psychologists/{id}/available-slots - Invalid psychologist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPsychologistID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /psychologists/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(psychologistID, dateStr)
	if err != nil {
		h.logger.Warn("GET /psychologists/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Ошибки справочного сервиса use case не возвращает, а подставляет сетку по умолчанию
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidInput) {
			h.logger.Warn("GET /psychologists/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /psychologists/{id}/available-slots - Failed to get slots: psychologist_id=%d, error=%v",
			psychologistID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /psychologists/{id}/available-slots - Slots retrieved: psychologist_id=%d, slots_count=%d, fallback=%t",
		psychologistID, len(result.Slots), result.Fallback)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
