package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusScheduled            AppointmentStatus = "scheduled"
	StatusAwaitingPatient      AppointmentStatus = "awaiting_patient"
	StatusConfirmed            AppointmentStatus = "confirmed"
	StatusAwaitingPsychologist AppointmentStatus = "awaiting_psychologist"
	StatusCompleted            AppointmentStatus = "completed"
	StatusCancelled            AppointmentStatus = "cancelled"
)

// IsValid returns true if the status is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusAwaitingPatient, StatusConfirmed,
		StatusAwaitingPsychologist, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true if the status cannot change anymore
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// AppointmentType represents how the session takes place
type AppointmentType string

const (
	TypeOnline   AppointmentType = "online"
	TypeInPerson AppointmentType = "in_person"
)

// IsValid returns true if the type is known
func (t AppointmentType) IsValid() bool {
	return t == TypeOnline || t == TypeInPerson
}

// Appointment represents a scheduled session between a psychologist and a patient
type Appointment struct {
	ID              int64
	PatientID       int64
	PsychologistID  int64
	ClinicID        *int64 // clinic of the psychologist at creation time
	Date            time.Time
	DurationMinutes int
	Type            AppointmentType
	Status          AppointmentStatus
	Notes           *string
	SessionValue    decimal.NullDecimal
	Room            RoomAssignment

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsInPerson returns true for in-person sessions
func (a *Appointment) IsInPerson() bool {
	return a.Type == TypeInPerson
}

// CanChangeStatus returns true if the appointment is not in a terminal status
func (a *Appointment) CanChangeStatus() bool {
	return !a.Status.IsTerminal()
}

// EndsAt returns the end of the session
func (a *Appointment) EndsAt() time.Time {
	return a.Date.Add(time.Duration(a.DurationMinutes) * time.Minute)
}
