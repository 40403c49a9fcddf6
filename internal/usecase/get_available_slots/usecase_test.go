package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/logger"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	slots []directoryservice.Slot
	err   error
}

func (f *fakeDirectory) GetSlots(_ context.Context, _ int64, _ time.Time) ([]directoryservice.Slot, error) {
	return f.slots, f.err
}

type fakeMetrics struct {
	fallbacks map[string]int
}

func (m *fakeMetrics) IncDirectoryFallback(kind string) {
	if m.fallbacks == nil {
		m.fallbacks = make(map[string]int)
	}
	m.fallbacks[kind]++
}

var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestExecute_ReturnsConfiguredSlots(t *testing.T) {
	dir := &fakeDirectory{slots: []directoryservice.Slot{
		{Time: types.MustTimeString("09:00"), Available: true},
		{Time: types.MustTimeString("12:30"), Available: false},
	}}
	metrics := &fakeMetrics{}
	uc := NewUseCase(dir, metrics, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{PsychologistID: 1, Date: testDate})
	require.NoError(t, err)

	assert.False(t, resp.Fallback)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "12:30", resp.Slots[1].Time.String())
	assert.False(t, resp.Slots[1].Available)
	assert.Empty(t, metrics.fallbacks)
}

func TestExecute_EmptyConfigurationIsNotFallback(t *testing.T) {
	uc := NewUseCase(&fakeDirectory{slots: []directoryservice.Slot{}}, &fakeMetrics{}, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{PsychologistID: 1, Date: testDate})
	require.NoError(t, err)

	assert.False(t, resp.Fallback)
	assert.Empty(t, resp.Slots)
}

func TestExecute_FallsBackToDefaultGrid(t *testing.T) {
	metrics := &fakeMetrics{}
	uc := NewUseCase(&fakeDirectory{err: errors.New("connection refused")}, metrics, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{PsychologistID: 1, Date: testDate})
	require.NoError(t, err)

	assert.True(t, resp.Fallback)
	require.Len(t, resp.Slots, 11)
	for i, s := range resp.Slots {
		assert.Equal(t, 8+i, s.Time.Hour())
		assert.True(t, s.Available)
	}
	assert.Equal(t, 1, metrics.fallbacks[fallbackKindSlots])
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeDirectory{}, &fakeMetrics{}, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{PsychologistID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{PsychologistID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
