package directoryservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m04kA/SMC-ClinicScheduling/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/internal/psychologists/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"name":"Anna","clinic_id":10,"default_session_value":"120.50","use_clinic_value":true}`))
	})
	mux.HandleFunc("/internal/psychologists/1/slots", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-03-02", r.URL.Query().Get("date"))
		_, _ = w.Write([]byte(`{"slots":[{"time":"09:00","available":true},{"time":"10:00","available":false}]}`))
	})
	mux.HandleFunc("/internal/psychologists/3/slots", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"slots":null}`))
	})
	mux.HandleFunc("/internal/clinics/10", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":10,"name":"Calm","staff_ids":[5,6],"payment_settings":{"default_session_value":null}}`))
	})
	mux.HandleFunc("/internal/patients/7", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":7,"name":"Ivan"}`))
	})
	mux.HandleFunc("/internal/patients/8", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_GetPsychologist(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL+"/", time.Second, logger.Nop())

	p, err := client.GetPsychologist(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Anna", p.Name)
	require.NotNil(t, p.ClinicID)
	assert.Equal(t, int64(10), *p.ClinicID)
	assert.True(t, p.UseClinicValue)
	assert.True(t, p.DefaultSessionValue.Valid)
	assert.True(t, decimal.RequireFromString("120.5").Equal(p.DefaultSessionValue.Decimal))
}

func TestClient_NotFound(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, time.Second, logger.Nop())

	_, err := client.GetPsychologist(context.Background(), 2)
	assert.ErrorIs(t, err, ErrPsychologistNotFound)

	_, err = client.GetClinic(context.Background(), 11)
	assert.ErrorIs(t, err, ErrClinicNotFound)
}

func TestClient_GetClinic(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, time.Second, logger.Nop())

	clinic, err := client.GetClinic(context.Background(), 10)
	require.NoError(t, err)

	assert.True(t, clinic.IsStaff(6))
	assert.False(t, clinic.IsStaff(7))
	assert.False(t, clinic.PaymentSettings.DefaultSessionValue.Valid)
}

func TestClient_GetPatient(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, time.Second, logger.Nop())

	patient, err := client.GetPatient(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, patient.ClinicID)

	_, err = client.GetPatient(context.Background(), 8)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GetSlots(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, time.Second, logger.Nop())

	slots, err := client.GetSlots(context.Background(), 1, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].Time.String())
	assert.False(t, slots[1].Available)

	slots, err = client.GetSlots(context.Background(), 3, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestClient_Unreachable(t *testing.T) {
	srv := newTestServer(t)
	srv.Close()
	client := NewClient(srv.URL, time.Second, logger.Nop())

	_, err := client.GetSlots(context.Background(), 1, time.Now())
	assert.ErrorIs(t, err, ErrInternal)
}
