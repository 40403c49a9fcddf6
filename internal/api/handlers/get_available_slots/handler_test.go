package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	getAvailableSlots "github.com/m04kA/SMC-ClinicScheduling/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/logger"
	"github.com/m04kA/SMC-ClinicScheduling/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	req *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.req = req
	return &getAvailableSlots.Response{
		PsychologistID: req.PsychologistID,
		Date:           req.Date,
		Slots: []getAvailableSlots.Slot{
			{Time: types.MustTimeString("09:00"), Available: true},
			{Time: types.MustTimeString("10:00"), Available: false},
		},
	}, nil
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/psychologists/{psychologistId}/available-slots", NewHandler(uc, logger.Nop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, "/psychologists/3/available-slots?date=2026-03-02")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), uc.req.Date)
	assert.JSONEq(t, `{
		"psychologistId": 3,
		"date": "2026-03-02",
		"slots": [{"time": "09:00", "available": true}, {"time": "10:00", "available": false}],
		"fallback": false
	}`, rec.Body.String())
}

func TestHandle_BadRequest(t *testing.T) {
	for _, target := range []string{
		"/psychologists/abc/available-slots?date=2026-03-02",
		"/psychologists/0/available-slots?date=2026-03-02",
		"/psychologists/3/available-slots",
		"/psychologists/3/available-slots?date=02.03.2026",
	} {
		rec := serve(&fakeUseCase{}, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}
