package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
)

// fallbackKindSlots метка метрики деградации слотов
const fallbackKindSlots = "slot_grid"

// UseCase use case для получения слотов психолога на дату
type UseCase struct {
	directory DirectoryClient
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(directory DirectoryClient, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		directory: directory,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute возвращает настроенные слоты психолога.
// Если справочный сервис недоступен, возвращается сетка по умолчанию 08:00..18:00, все слоты свободны.
// Пустой список от сервиса считается успешным ответом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: psychologist=%d, date=%s",
		req.PsychologistID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		PsychologistID: req.PsychologistID,
		Date:           req.Date,
	}

	configured, err := uc.directory.GetSlots(ctx, req.PsychologistID, req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: failed to load slots for psychologist=%d, using default grid: %v",
			req.PsychologistID, err)
		uc.metrics.IncDirectoryFallback(fallbackKindSlots)

		grid := domain.DefaultSlotGrid()
		resp.Slots = make([]Slot, 0, len(grid))
		for _, s := range grid {
			resp.Slots = append(resp.Slots, Slot{Time: s.Time, Available: s.Available})
		}
		resp.Fallback = true
		return resp, nil
	}

	resp.Slots = make([]Slot, 0, len(configured))
	for _, s := range configured {
		resp.Slots = append(resp.Slots, Slot{Time: s.Time, Available: s.Available})
	}

	uc.logger.Info("GetAvailableSlots: psychologist=%d, %d slots", req.PsychologistID, len(resp.Slots))
	return resp, nil
}
