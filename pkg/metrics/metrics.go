package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "smc"

// Metrics коллекторы Prometheus для HTTP слоя и мастера записи
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	wizardTransitions   *prometheus.CounterVec
	bookingsConfirmed   *prometheus.CounterVec
	wizardStep          *prometheus.GaugeVec
}

// New создает метрики и регистрирует их в реестре по умолчанию
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики и регистрирует их в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests",
		}, []string{"service", "method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),
		wizardTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wizard",
			Name:      "transitions_total",
			Help:      "Wizard actions by outcome",
		}, []string{"service", "action", "applied"}),
		bookingsConfirmed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wizard",
			Name:      "bookings_confirmed_total",
			Help:      "Confirmed bookings by appointment type",
		}, []string{"service", "appointment_type"}),
		wizardStep: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "wizard",
			Name:      "current_step",
			Help:      "Current wizard step index",
		}, []string{"service"}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.wizardTransitions,
		m.bookingsConfirmed,
		m.wizardStep,
	)

	return m
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, route).Observe(duration.Seconds())
}

// ObserveTransition учитывает действие мастера и было ли оно применено
func (m *Metrics) ObserveTransition(action string, applied bool) {
	if m == nil {
		return
	}
	m.wizardTransitions.WithLabelValues(m.serviceName, action, strconv.FormatBool(applied)).Inc()
}

// ObserveConfirmation учитывает подтвержденную запись
func (m *Metrics) ObserveConfirmation(appointmentType string) {
	if m == nil {
		return
	}
	m.bookingsConfirmed.WithLabelValues(m.serviceName, appointmentType).Inc()
}

// SetStep выставляет текущий шаг мастера
func (m *Metrics) SetStep(step int) {
	if m == nil {
		return
	}
	m.wizardStep.WithLabelValues(m.serviceName).Set(float64(step))
}
