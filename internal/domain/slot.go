package domain

import (
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/pkg/types"
)

// Slot represents a bookable time of a psychologist on a date
type Slot struct {
	Time      types.TimeString
	Available bool
}

// DefaultSlotGrid returns the hourly grid used when no slots could be loaded,
// from DefaultSlotGridStartHour to DefaultSlotGridEndHour inclusive, all available
func DefaultSlotGrid() []Slot {
	slots := make([]Slot, 0, DefaultSlotGridEndHour-DefaultSlotGridStartHour+1)
	for hour := DefaultSlotGridStartHour; hour <= DefaultSlotGridEndHour; hour++ {
		t := time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC)
		slots = append(slots, Slot{Time: types.NewTimeString(t), Available: true})
	}
	return slots
}
