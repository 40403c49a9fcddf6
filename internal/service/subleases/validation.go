package subleases

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// normalizePage проверяет параметры пагинации и подставляет значения по умолчанию
func normalizePage(page, perPage int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if perPage == 0 {
		perPage = DefaultPerPage
	}

	if page < 1 {
		return 0, 0, fmt.Errorf("%w: page must be at least 1", ErrInvalidInput)
	}
	if perPage < 1 || perPage > MaxPerPage {
		return 0, 0, fmt.Errorf("%w: perPage must be between 1 and %d", ErrInvalidInput, MaxPerPage)
	}

	return page, perPage, nil
}

// summaryRange строит полуинтервал [from, to+1 день) по датам включительно.
// Без дат берется период с первого числа текущего месяца по сегодня.
func summaryRange(now time.Time, from, to *time.Time) (time.Time, time.Time, error) {
	today := truncateToDay(now)

	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	if from != nil {
		start = truncateToDay(*from)
	}

	end := today
	if to != nil {
		end = truncateToDay(*to)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}

	return start, end.AddDate(0, 0, 1), nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func validateStatus(status *string) (*domain.SubleaseStatus, error) {
	if status == nil || *status == "" {
		return nil, nil
	}

	s := domain.SubleaseStatus(*status)
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
	}
	return &s, nil
}
