package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	dErrors "personnel/pkg/domain-errors"
)

// Metrics provides observability for the personnel module.
// Tracks records created, domain failures by code, and per-operation latency.
type Metrics struct {
	RecordsCreated    *prometheus.CounterVec
	DomainErrors      *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
}

// New registers the personnel metrics on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the personnel metrics on reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not collide.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RecordsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "personnel_records_created_total",
			Help: "Total number of records created, by entity",
		}, []string{"entity"}),
		DomainErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "personnel_domain_errors_total",
			Help: "Total number of failed operations, by domain error code",
		}, []string{"code"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "personnel_operation_duration_seconds",
			Help:    "Duration of service operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"op"}),
	}
}

// IncrementCreated records a successful create of entity.
func (m *Metrics) IncrementCreated(entity string) {
	m.RecordsCreated.WithLabelValues(entity).Inc()
}

// IncrementDomainError records a failure under its domain code.
func (m *Metrics) IncrementDomainError(err error) {
	m.DomainErrors.WithLabelValues(string(dErrors.CodeOf(err))).Inc()
}

// ObserveOperation records the duration of op.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(op string, start time.Time) {
	m.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
