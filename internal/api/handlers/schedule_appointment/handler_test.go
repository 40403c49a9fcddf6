package schedule_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduling/internal/domain"
	scheduleAppointment "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/schedule_appointment"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	req    *scheduleAppointment.Request
	result *scheduleAppointment.Result
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *scheduleAppointment.Request) (*scheduleAppointment.Result, error) {
	f.req = req
	return f.result, f.err
}

func post(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body)))
	return rec
}

const seriesBody = `{
	"patientId": 7,
	"psychologistId": 3,
	"date": "2026-03-02T10:00:00Z",
	"type": "in_person",
	"roomId": 5,
	"sessionValue": 150.5,
	"recurrence": {"frequency": "weekly", "occurrenceCount": 4}
}`

func TestHandle_StatusByOutcome(t *testing.T) {
	tests := []struct {
		name   string
		result *scheduleAppointment.Result
		err    error
		status int
	}{
		{
			name:   "success",
			result: &scheduleAppointment.Result{Mode: scheduleAppointment.ModeRecurring, Outcome: scheduleAppointment.OutcomeSuccess, Succeeded: 4},
			status: http.StatusCreated,
		},
		{
			name:   "partial",
			result: &scheduleAppointment.Result{Mode: scheduleAppointment.ModeRecurring, Outcome: scheduleAppointment.OutcomePartial, Succeeded: 3, Failed: 1},
			status: http.StatusMultiStatus,
		},
		{
			name:   "all failed",
			result: &scheduleAppointment.Result{Mode: scheduleAppointment.ModeRecurring, Outcome: scheduleAppointment.OutcomeFailed, Failed: 4},
			err:    scheduleAppointment.ErrSeriesFailed,
			status: http.StatusBadGateway,
		},
		{
			name:   "room not found",
			err:    scheduleAppointment.ErrRoomNotFound,
			status: http.StatusNotFound,
		},
		{
			name:   "date in past",
			err:    scheduleAppointment.ErrDateInPast,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{result: tt.result, err: tt.err}

			rec := post(uc, seriesBody)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_MapsRequest(t *testing.T) {
	uc := &fakeUseCase{result: &scheduleAppointment.Result{Outcome: scheduleAppointment.OutcomeSuccess}}

	rec := post(uc, seriesBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.req)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), uc.req.Date.UTC())
	assert.Equal(t, domain.TypeInPerson, uc.req.Type)
	require.NotNil(t, uc.req.Recurrence)
	assert.Equal(t, domain.FrequencyWeekly, uc.req.Recurrence.Frequency)
	assert.Equal(t, 4, uc.req.Recurrence.OccurrenceCount)
	assert.Equal(t, "150.5", uc.req.SessionValue.String())
}

func TestHandle_SeriesFailedBodyCarriesCounts(t *testing.T) {
	uc := &fakeUseCase{
		result: &scheduleAppointment.Result{Mode: scheduleAppointment.ModeRecurring, Outcome: scheduleAppointment.OutcomeFailed, Failed: 4},
		err:    scheduleAppointment.ErrSeriesFailed,
	}

	rec := post(uc, seriesBody)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(http.StatusBadGateway), body["code"])
	assert.Equal(t, "failed", body["outcome"])
	assert.Equal(t, float64(4), body["failed"])
}

func TestHandle_BadRequest(t *testing.T) {
	for _, body := range []string{
		`not json`,
		`{"patientId": 7, "date": "2026-03-02 10:00"}`,
		`{"patientId": 7, "unknown": true}`,
	} {
		rec := post(&fakeUseCase{}, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestHandle_SingleErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{name: "store failure", err: fmt.Errorf("%w: connection reset", scheduleAppointment.ErrCreateFailed), status: http.StatusInternalServerError, message: msgCreateFailed},
		{name: "room removed", err: fmt.Errorf("%w: removed", scheduleAppointment.ErrRoomNotFound), status: http.StatusNotFound, message: msgRoomNotFound},
		{name: "directory", err: scheduleAppointment.ErrDirectoryUnavailable, status: http.StatusBadGateway, message: msgDirectoryUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(&fakeUseCase{err: tt.err}, seriesBody)
			require.Equal(t, tt.status, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
