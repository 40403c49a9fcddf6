package schedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	"github.com/shopspring/decimal"
)

// Mode режим создания
type Mode string

const (
	ModeSingle    Mode = "single"
	ModeRecurring Mode = "recurring"
)

// Outcome итог создания
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomePartial Outcome = "partial"
	OutcomeFailed  Outcome = "failed"
)

// Options параметры use case
type Options struct {
	SeriesParallelism      int // 1 = последовательная отправка серии
	DefaultDurationMinutes int
}

// Request модель запроса на создание записи или серии записей
type Request struct {
	PatientID       int64
	PsychologistID  int64
	Date            time.Time // дата и время начала (первой записи серии)
	DurationMinutes int       // 0 = по умолчанию
	Type            domain.AppointmentType
	Notes           *string
	RoomID          *int64 // запрос комнаты, только для очных сессий
	SessionValue    *decimal.Decimal
	Recurrence      *domain.Recurrence // nil = одна запись
}

// Result итог создания: счетчики и созданные записи в порядке дат
type Result struct {
	Mode         Mode
	Outcome      Outcome
	Succeeded    int
	Failed       int
	Appointments []*domain.Appointment
}
