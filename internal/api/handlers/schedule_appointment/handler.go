package schedule_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers"
	scheduleAppointment "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/schedule_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается RFC3339"
	msgDateInPast           = "дата записи должна быть в будущем"
	msgPsychologistNotFound = "психолог не найден"
	msgRoomNotFound         = "комната не найдена"
	msgRoomInactive         = "комната недоступна для бронирования"
	msgDirectoryUnavailable = "справочный сервис недоступен"
	msgSeriesFailed         = "не удалось создать ни одной записи серии"
	msgCreateFailed         = "не удалось сохранить запись"
)

type Handler struct {
	useCase ScheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase ScheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
// 201 - все записи созданы, 207 - серия создана частично, 502 - не создано ни одной записи серии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ScheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleAppointment.ErrSeriesFailed) && result != nil:
			h.logger.Error("POST /appointments - Series failed: psychologist_id=%d, failed=%d",
				req.PsychologistID, result.Failed)
			handlers.RespondJSON(w, http.StatusBadGateway, struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
				*SchedulingResultResponse
			}{http.StatusBadGateway, msgSeriesFailed, FromUseCaseResult(result)})

		case errors.Is(err, scheduleAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, scheduleAppointment.ErrDateInPast):
			h.logger.Warn("POST /appointments - Date in past: psychologist_id=%d", req.PsychologistID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, scheduleAppointment.ErrPsychologistNotFound):
			h.logger.Warn("POST /appointments - Psychologist not found: psychologist_id=%d", req.PsychologistID)
			handlers.RespondNotFound(w, msgPsychologistNotFound)

		case errors.Is(err, scheduleAppointment.ErrRoomNotFound):
			h.logger.Warn("POST /appointments - Room not found: room_id=%v", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, scheduleAppointment.ErrRoomInactive):
			h.logger.Warn("POST /appointments - Room inactive: room_id=%v", req.RoomID)
			handlers.RespondBadRequest(w, msgRoomInactive)

		case errors.Is(err, scheduleAppointment.ErrDirectoryUnavailable):
			h.logger.Error("POST /appointments - Directory unavailable: %v", err)
			handlers.RespondBadGateway(w, msgDirectoryUnavailable)

		case errors.Is(err, scheduleAppointment.ErrCreateFailed):
			h.logger.Error("POST /appointments - Create failed: patient_id=%d, psychologist_id=%d, error=%v",
				req.PatientID, req.PsychologistID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgCreateFailed)

		default:
			h.logger.Error("POST /appointments - Failed to schedule: patient_id=%d, psychologist_id=%d, error=%v",
				req.PatientID, req.PsychologistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.Outcome == scheduleAppointment.OutcomePartial {
		status = http.StatusMultiStatus
	}

	h.logger.Info("POST /appointments - Scheduled: mode=%s, outcome=%s, succeeded=%d, failed=%d",
		result.Mode, result.Outcome, result.Succeeded, result.Failed)
	handlers.RespondJSON(w, status, FromUseCaseResult(result))
}
