package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/pkg/types"
)

// Request модель запроса на получение слотов психолога
type Request struct {
	PsychologistID int64     // ID психолога
	Date           time.Time // Дата (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	PsychologistID int64
	Date           time.Time
	Slots          []Slot
	Fallback       bool // true, если слоты не удалось загрузить и возвращена сетка по умолчанию
}

// Slot модель временного слота
type Slot struct {
	Time      types.TimeString // Время начала (например, "10:00")
	Available bool
}
