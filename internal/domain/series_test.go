package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandSeries_Weekly(t *testing.T) {
	anchor := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	dates, err := ExpandSeries(anchor, FrequencyWeekly, 3)
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
	}, dates)
}

func TestExpandSeries_KthOccurrence(t *testing.T) {
	anchor := time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)

	for _, freq := range []Frequency{FrequencyWeekly, FrequencyBiweekly} {
		for n := MinOccurrences; n <= MaxOccurrences; n++ {
			dates, err := ExpandSeries(anchor, freq, n)
			require.NoError(t, err)
			require.Len(t, dates, n)
			for k, d := range dates {
				assert.Equal(t, anchor.AddDate(0, 0, k*freq.Days()), d)
			}
		}
	}
}

func TestExpandSeries_KeepsWallClockAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}
	anchor := time.Date(2026, 3, 23, 10, 0, 0, 0, loc)

	dates, err := ExpandSeries(anchor, FrequencyWeekly, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, dates[1].Hour())
}

func TestExpandSeries_InvalidParameters(t *testing.T) {
	anchor := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	_, err := ExpandSeries(anchor, Frequency("monthly"), 3)
	assert.ErrorIs(t, err, ErrInvalidRecurrence)

	_, err = ExpandSeries(anchor, FrequencyWeekly, 1)
	assert.ErrorIs(t, err, ErrInvalidRecurrence)

	_, err = ExpandSeries(anchor, FrequencyBiweekly, 13)
	assert.ErrorIs(t, err, ErrInvalidRecurrence)
}
