package directoryservice

import (
	"github.com/m04kA/SMC-ClinicScheduling/pkg/types"
	"github.com/shopspring/decimal"
)

// Psychologist модель психолога из справочного сервиса
type Psychologist struct {
	ID                  int64               `json:"id"`
	Name                string              `json:"name"`
	ClinicID            *int64              `json:"clinic_id,omitempty"`
	DefaultSessionValue decimal.NullDecimal `json:"default_session_value"`
	UseClinicValue      bool                `json:"use_clinic_value"`
}

// PaymentSettings платежные настройки клиники
type PaymentSettings struct {
	DefaultSessionValue decimal.NullDecimal `json:"default_session_value"`
}

// Clinic модель клиники из справочного сервиса
type Clinic struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	StaffIDs        []int64         `json:"staff_ids"`
	PaymentSettings PaymentSettings `json:"payment_settings"`
}

// IsStaff проверяет, что пользователь является сотрудником клиники
func (c *Clinic) IsStaff(userID int64) bool {
	for _, id := range c.StaffIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Patient модель пациента из справочного сервиса
type Patient struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ClinicID *int64 `json:"clinic_id,omitempty"`
}

// Slot настроенный слот психолога
type Slot struct {
	Time      types.TimeString `json:"time"`
	Available bool             `json:"available"`
}

// SlotsResponse ответ со слотами психолога на дату
type SlotsResponse struct {
	Slots []Slot `json:"slots"`
}

// ErrorResponse модель ошибки от справочного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
