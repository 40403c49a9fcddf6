package models

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/money"
)

// Request модели

// UpdateStatusRequest запрос на изменение статуса записи
type UpdateStatusRequest struct {
	ActorID int64  `json:"-"`
	Status  string `json:"status"`
}

// ListRoomRequestsRequest запрос списка запросов комнат клиники
type ListRoomRequestsRequest struct {
	ActorID  int64
	ClinicID int64
	Status   *string // pending (по умолчанию) или approved
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID                  int64        `json:"id"`
	PatientID           int64        `json:"patientId"`
	PsychologistID      int64        `json:"psychologistId"`
	ClinicID            *int64       `json:"clinicId,omitempty"`
	Date                time.Time    `json:"date"`
	DurationMinutes     int          `json:"durationMinutes"`
	Type                string       `json:"type"`
	Status              string       `json:"status"`
	Notes               *string      `json:"notes,omitempty"`
	SessionValue        *json.Number `json:"sessionValue"`
	SessionValueDisplay string       `json:"sessionValueDisplay,omitempty"`
	RoomID              *int64       `json:"roomId,omitempty"`
	RoomStatus          *string      `json:"roomStatus,omitempty"`
	CreatedAt           time.Time    `json:"createdAt"`
	UpdatedAt           time.Time    `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                  a.ID,
		PatientID:           a.PatientID,
		PsychologistID:      a.PsychologistID,
		ClinicID:            a.ClinicID,
		Date:                a.Date,
		DurationMinutes:     a.DurationMinutes,
		Type:                string(a.Type),
		Status:              string(a.Status),
		Notes:               a.Notes,
		SessionValue:        money.NullableNumber(a.SessionValue),
		SessionValueDisplay: money.FormatNullable(a.SessionValue),
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}

	if roomID, ok := a.Room.RoomID(); ok {
		resp.RoomID = &roomID
	}
	if status, ok := a.Room.Status(); ok {
		s := string(status)
		resp.RoomStatus = &s
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(items []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{Appointments: make([]AppointmentResponse, 0, len(items))}
	for _, a := range items {
		if item := FromDomainAppointment(a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}
	return resp
}
