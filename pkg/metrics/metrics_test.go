package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.IncAppointmentsScheduled("recurring", "partial")
	m.IncAppointmentsScheduled("recurring", "partial")
	m.IncRoomDecision("approve", "ok")
	m.IncSubleaseCreated()
	m.IncDirectoryFallback("slots")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.appointmentsCreated.WithLabelValues("recurring", "partial")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.roomDecisions.WithLabelValues("approve", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.subleasesCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.directoryFallbacks.WithLabelValues("slots")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/x", 200, time.Millisecond)
		m.ObserveDBQuery("query", time.Millisecond)
		m.SetDBPoolStats("main", 1, 1, 0)
		m.IncAppointmentsScheduled("single", "success")
		m.IncRoomDecision("reject", "ok")
		m.IncSubleaseCreated()
		m.IncSubleasePaid()
		m.IncDirectoryFallback("session_value")
	})
}
