// Package metrics содержит Prometheus-метрики сервиса
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database
	DBQueryDuration   *prometheus.HistogramVec
	DBConnectionsOpen *prometheus.GaugeVec
	DBConnectionsIdle *prometheus.GaugeVec
	DBConnectionsUsed *prometheus.GaugeVec

	// Движок подбора слотов
	AvailabilityResolutions *prometheus.CounterVec
	CommitConflictsTotal    *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),

		DBConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}, []string{}),

		DBConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}, []string{}),

		DBConnectionsUsed: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections in use",
			ConstLabels: constLabels,
		}, []string{}),

		AvailabilityResolutions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_resolutions_total",
			Help:        "Availability resolution attempts by cadence and outcome",
			ConstLabels: constLabels,
		}, []string{"frequency", "outcome"}),

		CommitConflictsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_commit_conflicts_total",
			Help:        "Booking commits rejected because the slot was taken concurrently",
			ConstLabels: constLabels,
		}, []string{}),
	}
}

// ObserveResolution учитывает результат одного вычисления доступности
func (m *Metrics) ObserveResolution(frequency, outcome string) {
	m.AvailabilityResolutions.WithLabelValues(frequency, outcome).Inc()
}

// ObserveCommitConflict учитывает проигрыш гонки при фиксации бронирования
func (m *Metrics) ObserveCommitConflict() {
	m.CommitConflictsTotal.WithLabelValues().Inc()
}
