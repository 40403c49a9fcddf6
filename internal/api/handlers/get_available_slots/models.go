package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	PsychologistID int64           `json:"psychologistId"`
	Date           string          `json:"date"`
	Slots          []AvailableSlot `json:"slots"`
	Fallback       bool            `json:"fallback"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:      slot.Time.String(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		PsychologistID: resp.PsychologistID,
		Date:           resp.Date.Format(domain.DateFormat),
		Slots:          slots,
		Fallback:       resp.Fallback,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(psychologistID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		PsychologistID: psychologistID,
		Date:           date,
	}, nil
}
