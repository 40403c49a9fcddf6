package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса.
// Все методы безопасно вызывать на nil-указателе - метрики тогда просто не пишутся.
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbOpenConns     *prometheus.GaugeVec
	dbInUseConns    *prometheus.GaugeVec
	dbIdleConns     *prometheus.GaugeVec

	appointmentsCreated *prometheus.CounterVec
	roomDecisions       *prometheus.CounterVec
	subleasesCreated    prometheus.Counter
	subleasesPaid       prometheus.Counter
	directoryFallbacks  *prometheus.CounterVec
}

// New регистрирует метрики в указанном registerer
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbOpenConns: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: labels,
		}, []string{"db"}),
		dbInUseConns: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections in use",
			ConstLabels: labels,
		}, []string{"db"}),
		dbIdleConns: f.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: labels,
		}, []string{"db"}),
		appointmentsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointments_scheduled_total",
			Help:        "Scheduling requests by mode (single, recurring) and outcome (success, partial, failed)",
			ConstLabels: labels,
		}, []string{"mode", "outcome"}),
		roomDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "room_decisions_total",
			Help:        "Room request decisions by action and result",
			ConstLabels: labels,
		}, []string{"action", "result"}),
		subleasesCreated: f.NewCounter(prometheus.CounterOpts{
			Name:        "subleases_created_total",
			Help:        "Subleases created on room approval",
			ConstLabels: labels,
		}),
		subleasesPaid: f.NewCounter(prometheus.CounterOpts{
			Name:        "subleases_paid_total",
			Help:        "Subleases marked as paid",
			ConstLabels: labels,
		}),
		directoryFallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "directory_fallbacks_total",
			Help:        "Directory lookups replaced by a default value",
			ConstLabels: labels,
		}, []string{"kind"}),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *Metrics) SetDBPoolStats(db string, open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbOpenConns.WithLabelValues(db).Set(float64(open))
	m.dbInUseConns.WithLabelValues(db).Set(float64(inUse))
	m.dbIdleConns.WithLabelValues(db).Set(float64(idle))
}

func (m *Metrics) IncAppointmentsScheduled(mode, outcome string) {
	if m == nil {
		return
	}
	m.appointmentsCreated.WithLabelValues(mode, outcome).Inc()
}

func (m *Metrics) IncRoomDecision(action, result string) {
	if m == nil {
		return
	}
	m.roomDecisions.WithLabelValues(action, result).Inc()
}

func (m *Metrics) IncSubleaseCreated() {
	if m == nil {
		return
	}
	m.subleasesCreated.Inc()
}

func (m *Metrics) IncSubleasePaid() {
	if m == nil {
		return
	}
	m.subleasesPaid.Inc()
}

func (m *Metrics) IncDirectoryFallback(kind string) {
	if m == nil {
		return
	}
	m.directoryFallbacks.WithLabelValues(kind).Inc()
}
