package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRecurrence is returned for unsupported recurrence parameters
var ErrInvalidRecurrence = errors.New("domain: invalid recurrence")

// Frequency is the spacing of a recurring series
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
)

// Series occurrence limits
const (
	MinOccurrences = 2
	MaxOccurrences = 12
)

// Days returns the interval in days, 0 for unknown frequencies
func (f Frequency) Days() int {
	switch f {
	case FrequencyWeekly:
		return 7
	case FrequencyBiweekly:
		return 14
	}
	return 0
}

// IsValid returns true if the frequency is supported
func (f Frequency) IsValid() bool {
	return f.Days() > 0
}

// Recurrence describes a series of independent appointments
type Recurrence struct {
	Frequency       Frequency
	OccurrenceCount int
}

// Validate checks frequency and occurrence count
func (r Recurrence) Validate() error {
	if !r.Frequency.IsValid() {
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidRecurrence, r.Frequency)
	}
	if r.OccurrenceCount < MinOccurrences || r.OccurrenceCount > MaxOccurrences {
		return fmt.Errorf("%w: occurrence count must be between %d and %d", ErrInvalidRecurrence, MinOccurrences, MaxOccurrences)
	}
	return nil
}

// ExpandSeries returns count dates: anchor + k*frequency days for k in [0, count).
// Calendar days are added, so the wall clock time is kept across DST changes.
func ExpandSeries(anchor time.Time, frequency Frequency, count int) ([]time.Time, error) {
	if err := (Recurrence{Frequency: frequency, OccurrenceCount: count}).Validate(); err != nil {
		return nil, err
	}

	days := frequency.Days()
	dates := make([]time.Time, 0, count)
	for k := 0; k < count; k++ {
		dates = append(dates, anchor.AddDate(0, 0, k*days))
	}
	return dates, nil
}
