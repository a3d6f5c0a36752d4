package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/constants"
)

// Metrics manages the Prometheus metrics of the risk engine.
type Metrics struct {
	Computations       *prometheus.CounterVec
	ComputationLatency *prometheus.HistogramVec
	AnomaliesDetected  *prometheus.CounterVec
	CacheLookups       *prometheus.CounterVec
	RateLimitHits      *prometheus.CounterVec
	HTTPRequests       *prometheus.CounterVec
	HTTPLatency        *prometheus.HistogramVec
}

// NewMetrics creates the metrics and registers them with reg. Tests pass a
// fresh registry so parallel packages never collide on metric names.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Computations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vsrp_risk_computations_total",
				Help: "Total number of risk engine computations.",
			},
			[]string{"operation", "result"},
		),
		ComputationLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vsrp_risk_computation_latency_seconds",
				Help:    "Latency of risk engine computations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		AnomaliesDetected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vsrp_risk_anomalies_detected_total",
				Help: "Total number of anomalies detected, by type and severity.",
			},
			[]string{"anomaly_type", "severity"},
		),
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vsrp_risk_cache_lookups_total",
				Help: "Cache lookups by cache name and outcome.",
			},
			[]string{"cache", "outcome"},
		),
		RateLimitHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vsrp_risk_rate_limit_hits_total",
				Help: "Total number of rate limit rejections.",
			},
			[]string{"scope"},
		),
		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vsrp_http_requests_total",
				Help: "HTTP requests by method, route template and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vsrp_http_request_duration_seconds",
				Help:    "HTTP request latency by method and route template.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// RecordComputation records one engine computation with its outcome.
func (m *Metrics) RecordComputation(operation, result string, duration time.Duration) {
	m.Computations.WithLabelValues(operation, result).Inc()
	m.ComputationLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordAnomaly records one detected anomaly.
func (m *Metrics) RecordAnomaly(anomalyType, severity string) {
	m.AnomaliesDetected.WithLabelValues(anomalyType, severity).Inc()
}

// RecordCacheLookup records a cache hit or miss.
func (m *Metrics) RecordCacheLookup(cache, outcome string) {
	m.CacheLookups.WithLabelValues(cache, outcome).Inc()
}

// RecordRateLimitHit records a rate limit rejection.
func (m *Metrics) RecordRateLimitHit(scope constants.RateLimitScope) {
	m.RateLimitHits.WithLabelValues(string(scope)).Inc()
}

// RecordHTTPRequest records one served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequests.WithLabelValues(method, path, status).Inc()
	m.HTTPLatency.WithLabelValues(method, path).Observe(duration.Seconds())
}
