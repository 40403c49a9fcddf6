package models

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/money"
)

// Request модели

// ListRequest запрос списка субаренд клиники
type ListRequest struct {
	ActorID  int64
	ClinicID int64
	Status   *string
	Page     int // 0 = первая страница
	PerPage  int // 0 = значение по умолчанию
}

// SummaryRequest запрос сводки за период
// From и To - даты включительно, nil = с начала текущего месяца по сегодня
type SummaryRequest struct {
	ActorID int64
	From    *time.Time
	To      *time.Time
}

// Response модели

// SubleaseResponse ответ с данными субаренды
type SubleaseResponse struct {
	ID              int64       `json:"id"`
	RoomID          int64       `json:"roomId"`
	ClinicID        int64       `json:"clinicId"`
	AppointmentID   int64       `json:"appointmentId"`
	PsychologistID  int64       `json:"psychologistId"`
	PatientID       int64       `json:"patientId"`
	AppointmentDate time.Time   `json:"appointmentDate"`
	Value           json.Number `json:"value"`
	ValueDisplay    string      `json:"valueDisplay"`
	Status          string      `json:"status"`
	PaidAt          *time.Time  `json:"paidAt,omitempty"`
	CancelledAt     *time.Time  `json:"cancelledAt,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// SubleaseListResponse страница субаренд
type SubleaseListResponse struct {
	Subleases []SubleaseResponse `json:"subleases"`
	Total     int                `json:"total"`
	Page      int                `json:"page"`
	PerPage   int                `json:"perPage"`
}

// StatusTotal сумма и количество субаренд одного статуса
type StatusTotal struct {
	Total        json.Number `json:"total"`
	TotalDisplay string      `json:"totalDisplay"`
	Count        int         `json:"count"`
}

// SummaryResponse сводка субаренд за период
type SummaryResponse struct {
	ClinicID       *int64      `json:"clinicId,omitempty"`
	PsychologistID *int64      `json:"psychologistId,omitempty"`
	From           string      `json:"from"`
	To             string      `json:"to"`
	Pending        StatusTotal `json:"pending"`
	Paid           StatusTotal `json:"paid"`
	Cancelled      StatusTotal `json:"cancelled"`
}

// Методы конвертации

// FromDomainSublease конвертирует domain модель в DTO
func FromDomainSublease(s *domain.Sublease) *SubleaseResponse {
	if s == nil {
		return nil
	}

	return &SubleaseResponse{
		ID:              s.ID,
		RoomID:          s.RoomID,
		ClinicID:        s.ClinicID,
		AppointmentID:   s.AppointmentID,
		PsychologistID:  s.PsychologistID,
		PatientID:       s.PatientID,
		AppointmentDate: s.AppointmentDate,
		Value:           money.Number(s.Value),
		ValueDisplay:    money.Format(s.Value),
		Status:          string(s.Status),
		PaidAt:          s.PaidAt,
		CancelledAt:     s.CancelledAt,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainSubleaseList конвертирует страницу domain моделей в DTO
func FromDomainSubleaseList(items []*domain.Sublease, total, page, perPage int) *SubleaseListResponse {
	resp := &SubleaseListResponse{
		Subleases: make([]SubleaseResponse, 0, len(items)),
		Total:     total,
		Page:      page,
		PerPage:   perPage,
	}
	for _, s := range items {
		if item := FromDomainSublease(s); item != nil {
			resp.Subleases = append(resp.Subleases, *item)
		}
	}
	return resp
}

// FromDomainSummary конвертирует сводку в DTO, to - последний день периода
func FromDomainSummary(s *domain.SubleaseSummary, filter domain.SubleaseSummaryFilter) *SummaryResponse {
	return &SummaryResponse{
		ClinicID:       filter.ClinicID,
		PsychologistID: filter.PsychologistID,
		From:           filter.From.Format(domain.DateFormat),
		To:             filter.To.AddDate(0, 0, -1).Format(domain.DateFormat),
		Pending: StatusTotal{
			Total:        money.Number(s.PendingTotal),
			TotalDisplay: money.Format(s.PendingTotal),
			Count:        s.PendingCount,
		},
		Paid: StatusTotal{
			Total:        money.Number(s.PaidTotal),
			TotalDisplay: money.Format(s.PaidTotal),
			Count:        s.PaidCount,
		},
		Cancelled: StatusTotal{
			Total:        money.Number(s.CancelledTotal),
			TotalDisplay: money.Format(s.CancelledTotal),
			Count:        s.CancelledCount,
		},
	}
}
