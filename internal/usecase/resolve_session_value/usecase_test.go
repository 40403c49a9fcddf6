package resolve_session_value

import (
	"context"
	"errors"
	"testing"

	"github.com/m04kA/SMC-ClinicScheduling/internal/integrations/directoryservice"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/logger"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/ptr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	psychologist    *directoryservice.Psychologist
	psychologistErr error
	clinic          *directoryservice.Clinic
	clinicErr       error
	clinicCalls     int
}

func (f *fakeDirectory) GetPsychologist(_ context.Context, _ int64) (*directoryservice.Psychologist, error) {
	return f.psychologist, f.psychologistErr
}

func (f *fakeDirectory) GetClinic(_ context.Context, _ int64) (*directoryservice.Clinic, error) {
	f.clinicCalls++
	return f.clinic, f.clinicErr
}

type fakeMetrics struct {
	fallbacks int
}

func (m *fakeMetrics) IncDirectoryFallback(string) { m.fallbacks++ }

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name       string
		dir        *fakeDirectory
		wantValue  string
		wantSource Source
		wantClinic int
	}{
		{
			name: "own value",
			dir: &fakeDirectory{
				psychologist: &directoryservice.Psychologist{ID: 1, DefaultSessionValue: amount("150.00")},
			},
			wantValue:  "150",
			wantSource: SourcePsychologist,
		},
		{
			name: "own value absent",
			dir: &fakeDirectory{
				psychologist: &directoryservice.Psychologist{ID: 1},
			},
			wantValue:  "0",
			wantSource: SourcePsychologist,
		},
		{
			name: "clinic value",
			dir: &fakeDirectory{
				psychologist: &directoryservice.Psychologist{ID: 1, ClinicID: ptr.Ptr(int64(10)), UseClinicValue: true, DefaultSessionValue: amount("150")},
				clinic:       &directoryservice.Clinic{ID: 10, PaymentSettings: directoryservice.PaymentSettings{DefaultSessionValue: amount("200.00")}},
			},
			wantValue:  "200",
			wantSource: SourceClinic,
			wantClinic: 1,
		},
		{
			name: "clinic value absent",
			dir: &fakeDirectory{
				psychologist: &directoryservice.Psychologist{ID: 1, ClinicID: ptr.Ptr(int64(10)), UseClinicValue: true, DefaultSessionValue: amount("150")},
				clinic:       &directoryservice.Clinic{ID: 10},
			},
			wantValue:  "0",
			wantSource: SourceClinic,
			wantClinic: 1,
		},
		{
			name: "clinic fetch fails",
			dir: &fakeDirectory{
				psychologist: &directoryservice.Psychologist{ID: 1, ClinicID: ptr.Ptr(int64(10)), UseClinicValue: true, DefaultSessionValue: amount("150.00")},
				clinicErr:    errors.New("timeout"),
			},
			wantValue:  "150",
			wantSource: SourcePsychologist,
			wantClinic: 1,
		},
		{
			name: "clinic pricing without clinic",
			dir: &fakeDirectory{
				psychologist: &directoryservice.Psychologist{ID: 1, UseClinicValue: true, DefaultSessionValue: amount("90")},
			},
			wantValue:  "90",
			wantSource: SourcePsychologist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.dir, &fakeMetrics{}, logger.Nop())

			resp, err := uc.Execute(context.Background(), &Request{PsychologistID: 1})
			require.NoError(t, err)

			assert.True(t, decimal.RequireFromString(tt.wantValue).Equal(resp.Value), "got %s", resp.Value)
			assert.Equal(t, tt.wantSource, resp.Source)
			assert.Equal(t, tt.wantClinic, tt.dir.clinicCalls)
		})
	}
}

func TestExecute_ClinicFailureIncrementsFallback(t *testing.T) {
	metrics := &fakeMetrics{}
	dir := &fakeDirectory{
		psychologist: &directoryservice.Psychologist{ID: 1, ClinicID: ptr.Ptr(int64(10)), UseClinicValue: true},
		clinicErr:    errors.New("timeout"),
	}

	_, err := NewUseCase(dir, metrics, logger.Nop()).Execute(context.Background(), &Request{PsychologistID: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.fallbacks)
}

func TestExecute_PsychologistErrors(t *testing.T) {
	uc := NewUseCase(&fakeDirectory{psychologistErr: directoryservice.ErrPsychologistNotFound}, &fakeMetrics{}, logger.Nop())
	_, err := uc.Execute(context.Background(), &Request{PsychologistID: 1})
	assert.ErrorIs(t, err, ErrPsychologistNotFound)

	uc = NewUseCase(&fakeDirectory{psychologistErr: directoryservice.ErrInternal}, &fakeMetrics{}, logger.Nop())
	_, err = uc.Execute(context.Background(), &Request{PsychologistID: 1})
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
