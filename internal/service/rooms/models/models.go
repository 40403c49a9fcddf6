package models

import (
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/money"
	"github.com/shopspring/decimal"
)

// Request модели

// RoomInput данные комнаты для создания и полной замены (PUT)
type RoomInput struct {
	Name          string           `json:"name"`
	Number        *string          `json:"number,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Capacity      int              `json:"capacity"`
	Amenities     []string         `json:"amenities"`
	SubleasePrice *decimal.Decimal `json:"subleasePrice,omitempty"` // nil = без платы
	IsActive      *bool            `json:"isActive,omitempty"`      // nil = true при создании, без изменений при обновлении
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID                   int64        `json:"id"`
	ClinicID             int64        `json:"clinicId"`
	Name                 string       `json:"name"`
	Number               *string      `json:"number,omitempty"`
	Description          *string      `json:"description,omitempty"`
	Capacity             int          `json:"capacity"`
	Amenities            []string     `json:"amenities"`
	SubleasePrice        *json.Number `json:"subleasePrice"`
	SubleasePriceDisplay string       `json:"subleasePriceDisplay,omitempty"` // "80,00"
	IsActive             bool         `json:"isActive"`
	CreatedAt            time.Time    `json:"createdAt"`
	UpdatedAt            time.Time    `json:"updatedAt"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// DeleteRoomResponse результат удаления комнаты
type DeleteRoomResponse struct {
	RoomID      int64 `json:"roomId"`
	Deleted     bool  `json:"deleted"`
	Deactivated bool  `json:"deactivated"` // комната используется записями и только выключена
}

// SubleaseApplicabilityResponse предварительная проверка платы за субаренду
type SubleaseApplicabilityResponse struct {
	RoomID       int64        `json:"roomId"`
	PatientID    int64        `json:"patientId"`
	ClinicID     int64        `json:"clinicId"`
	Applies      bool         `json:"applies"`
	Price        *json.Number `json:"price"`
	PriceDisplay string       `json:"priceDisplay,omitempty"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	amenities := make([]string, 0, len(r.Amenities))
	for _, a := range r.Amenities {
		amenities = append(amenities, string(a))
	}

	return &RoomResponse{
		ID:                   r.ID,
		ClinicID:             r.ClinicID,
		Name:                 r.Name,
		Number:               r.Number,
		Description:          r.Description,
		Capacity:             r.Capacity,
		Amenities:            amenities,
		SubleasePrice:        money.NullableNumber(r.SubleasePrice),
		SubleasePriceDisplay: money.FormatNullable(r.SubleasePrice),
		IsActive:             r.IsActive,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, r := range rooms {
		if room := FromDomainRoom(r); room != nil {
			resp.Rooms = append(resp.Rooms, *room)
		}
	}
	return resp
}
