package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubleaseStatus represents the billing status of a sublease
type SubleaseStatus string

const (
	SubleaseStatusPending   SubleaseStatus = "pending"
	SubleaseStatusPaid      SubleaseStatus = "paid"
	SubleaseStatusCancelled SubleaseStatus = "cancelled"
)

// IsValid returns true if the sublease status is known
func (s SubleaseStatus) IsValid() bool {
	return s == SubleaseStatusPending || s == SubleaseStatusPaid || s == SubleaseStatusCancelled
}

// Sublease is a fee charged to a psychologist for using a clinic room with an external patient
type Sublease struct {
	ID              int64
	RoomID          int64
	ClinicID        int64 // clinic owning the room
	AppointmentID   int64
	PsychologistID  int64
	PatientID       int64
	AppointmentDate time.Time
	Value           decimal.Decimal // room price at approval time
	Status          SubleaseStatus
	PaidAt          *time.Time
	CancelledAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeMarkedPaid returns true if the sublease is waiting for payment
func (s *Sublease) CanBeMarkedPaid() bool {
	return s.Status == SubleaseStatusPending
}

// SubleaseApplies returns true if using the room for this patient is charged:
// the room has a positive price and the patient is external to the clinic
func SubleaseApplies(room *Room, patientClinicID *int64, clinicID int64) bool {
	if room == nil || !room.HasSubleaseFee() {
		return false
	}
	return patientClinicID == nil || *patientClinicID != clinicID
}

// SubleaseFilter filters the sublease list of a clinic
type SubleaseFilter struct {
	ClinicID int64
	Status   *SubleaseStatus
	Limit    uint64
	Offset   uint64
}

// SubleaseSummaryFilter selects subleases for an aggregated view.
// Exactly one of ClinicID and PsychologistID is expected to be set.
type SubleaseSummaryFilter struct {
	ClinicID       *int64
	PsychologistID *int64
	From           time.Time // inclusive
	To             time.Time // exclusive
}

// SubleaseSummary aggregates subleases by status
type SubleaseSummary struct {
	PendingTotal   decimal.Decimal
	PendingCount   int
	PaidTotal      decimal.Decimal
	PaidCount      int
	CancelledTotal decimal.Decimal
	CancelledCount int
}
