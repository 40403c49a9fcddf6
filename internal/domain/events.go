package domain

import "time"

// RoomRequestApproved is emitted when a room request ends up approved,
// either as requested or after a change to another room
type RoomRequestApproved struct {
	AppointmentID   int64
	RoomID          int64
	RoomClinicID    int64
	PsychologistID  int64
	PatientID       int64
	AppointmentDate time.Time
}
