package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the HTTP-level Prometheus metrics for the application.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	TokenRejections *prometheus.CounterVec
}

// New creates and registers the HTTP metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "personnel_http_request_duration_seconds",
			Help:    "Latency of HTTP requests by route, method and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		TokenRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "personnel_auth_rejections_total",
			Help: "Total number of requests rejected by bearer authentication, by reason",
		}, []string{"reason"}),
	}
}

// IncrementTokenRejection records a rejected bearer token.
func (m *Metrics) IncrementTokenRejection(reason string) {
	m.TokenRejections.WithLabelValues(reason).Inc()
}
