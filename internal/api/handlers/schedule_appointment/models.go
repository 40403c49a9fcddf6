package schedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduling/internal/service/appointments/models"
	scheduleAppointment "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/schedule_appointment"
	"github.com/shopspring/decimal"
)

// ScheduleAppointmentRequest HTTP request model
type ScheduleAppointmentRequest struct {
	PatientID       int64              `json:"patientId"`
	PsychologistID  int64              `json:"psychologistId"`
	Date            string             `json:"date"` // RFC3339, "2026-03-02T10:00:00-03:00"
	DurationMinutes int                `json:"durationMinutes,omitempty"`
	Type            string             `json:"type"` // online | in_person
	Notes           *string            `json:"notes,omitempty"`
	RoomID          *int64             `json:"roomId,omitempty"`
	SessionValue    *decimal.Decimal   `json:"sessionValue,omitempty"`
	Recurrence      *RecurrenceRequest `json:"recurrence,omitempty"`
}

// RecurrenceRequest параметры серии записей
type RecurrenceRequest struct {
	Frequency       string `json:"frequency"` // weekly | biweekly
	OccurrenceCount int    `json:"occurrenceCount"`
}

// SchedulingResultResponse HTTP response model
type SchedulingResultResponse struct {
	Mode         string                       `json:"mode"`
	Outcome      string                       `json:"outcome"`
	Succeeded    int                          `json:"succeeded"`
	Failed       int                          `json:"failed"`
	Appointments []models.AppointmentResponse `json:"appointments"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScheduleAppointmentRequest) ToUseCaseRequest() (*scheduleAppointment.Request, error) {
	date, err := time.Parse(time.RFC3339, r.Date)
	if err != nil {
		return nil, err
	}

	req := &scheduleAppointment.Request{
		PatientID:       r.PatientID,
		PsychologistID:  r.PsychologistID,
		Date:            date,
		DurationMinutes: r.DurationMinutes,
		Type:            domain.AppointmentType(r.Type),
		Notes:           r.Notes,
		RoomID:          r.RoomID,
		SessionValue:    r.SessionValue,
	}

	if r.Recurrence != nil {
		req.Recurrence = &domain.Recurrence{
			Frequency:       domain.Frequency(r.Recurrence.Frequency),
			OccurrenceCount: r.Recurrence.OccurrenceCount,
		}
	}

	return req, nil
}

// FromUseCaseResult конвертирует результат use case в HTTP response
func FromUseCaseResult(result *scheduleAppointment.Result) *SchedulingResultResponse {
	return &SchedulingResultResponse{
		Mode:         string(result.Mode),
		Outcome:      string(result.Outcome),
		Succeeded:    result.Succeeded,
		Failed:       result.Failed,
		Appointments: models.FromDomainAppointmentList(result.Appointments).Appointments,
	}
}
