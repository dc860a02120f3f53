package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the backend.
type Metrics struct {
	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Report metrics
	ReportBuilds   *prometheus.CounterVec
	ReportDuration *prometheus.HistogramVec
	ReportFailures *prometheus.CounterVec

	// Publicity lifecycle metrics
	LifecycleRuns      prometheus.Counter
	LifecycleMutations *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		ReportBuilds: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_builds_total",
				Help:      "Statistics reports composed, by report kind",
			},
			[]string{"report"},
		),
		ReportDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "report_build_duration_seconds",
				Help:      "Time spent composing a statistics report",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"report"},
		),
		ReportFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_failures_total",
				Help:      "Statistics reports that failed to compose",
			},
			[]string{"report"},
		),
		LifecycleRuns: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "publicity_lifecycle_runs_total",
				Help:      "Publicity lifecycle executions",
			},
		),
		LifecycleMutations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "publicity_lifecycle_mutations_total",
				Help:      "Publicity rows mutated by the lifecycle, by operation",
			},
			[]string{"operation"},
		),
	}
}

// ObserveReport records one report composition.
func (m *Metrics) ObserveReport(report string, start time.Time, err error) {
	m.ReportBuilds.WithLabelValues(report).Inc()
	m.ReportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
	if err != nil {
		m.ReportFailures.WithLabelValues(report).Inc()
	}
}

// Handler returns the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
