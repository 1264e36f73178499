package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	httpRequestsTotal     *prometheus.CounterVec
	httpRequestDuration   *prometheus.HistogramVec
	appointmentsStored    prometheus.Gauge
	appointmentOperations *prometheus.CounterVec
}

// New регистрирует метрики в глобальном регистре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном регистре (удобно для тестов)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		appointmentsStored: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "appointments_stored",
			Help:        "Number of appointments currently held by the store",
			ConstLabels: constLabels,
		}),

		appointmentOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "appointment_operations_total",
			Help:        "Appointment store operations by type and result",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.appointmentsStored,
		m.appointmentOperations,
	)

	return m
}

// ObserveHTTPRequest фиксирует один обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SetAppointmentsStored обновляет текущий размер хранилища записей
func (m *Metrics) SetAppointmentsStored(count int) {
	m.appointmentsStored.Set(float64(count))
}

// IncAppointmentOperation увеличивает счетчик операций над записями
func (m *Metrics) IncAppointmentOperation(operation, result string) {
	m.appointmentOperations.WithLabelValues(operation, result).Inc()
}
