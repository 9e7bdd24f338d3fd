// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Assessment metrics
	AssessmentsTotal   *prometheus.CounterVec
	AssessmentErrors   *prometheus.CounterVec
	AssessmentDuration prometheus.Histogram
	CompositeScore     prometheus.Histogram

	// External read metrics
	ExternalReadErrors *prometheus.CounterVec
	RPCCallLatency     *prometheus.HistogramVec
	MarketCallLatency  prometheus.Histogram

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec

	// Health metrics
	LastSuccessfulAssessment prometheus.Gauge
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "solana_token_guard"
	}

	return &Metrics{
		AssessmentsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "assessments_total",
			Help:      "Total number of completed assessments by risk level",
		}, []string{"level"}),
		AssessmentErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "assessment_errors_total",
			Help:      "Total number of failed assessments by reason",
		}, []string{"reason"}),
		AssessmentDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "assessment_duration_seconds",
			Help:      "End-to-end assessment duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		CompositeScore: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "composite_score",
			Help:      "Distribution of composite risk scores",
			Buckets:   []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),

		ExternalReadErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "collector",
			Name:      "external_read_errors_total",
			Help:      "Total number of failed external reads by source",
		}, []string{"source"}),
		RPCCallLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "solana",
			Name:      "rpc_call_latency_seconds",
			Help:      "Solana RPC call latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		MarketCallLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "market",
			Name:      "aggregator_call_latency_seconds",
			Help:      "DEX aggregator call latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "database",
			Name:      "query_errors_total",
			Help:      "Total number of database query errors",
		}, []string{"operation"}),

		LastSuccessfulAssessment: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "health",
			Name:      "last_successful_assessment_timestamp",
			Help:      "Unix timestamp of last successful assessment",
		}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordAssessment records a completed assessment.
func RecordAssessment(level string, compositeScore int, durationSeconds float64) {
	DefaultMetrics.AssessmentsTotal.WithLabelValues(level).Inc()
	DefaultMetrics.CompositeScore.Observe(float64(compositeScore))
	DefaultMetrics.AssessmentDuration.Observe(durationSeconds)
}

// RecordAssessmentError records a failed assessment.
func RecordAssessmentError(reason string) {
	DefaultMetrics.AssessmentErrors.WithLabelValues(reason).Inc()
}

// RecordExternalReadError records a failed external read.
func RecordExternalReadError(source string) {
	DefaultMetrics.ExternalReadErrors.WithLabelValues(source).Inc()
}

// RecordRPCLatency records RPC call latency.
func RecordRPCLatency(method string, seconds float64) {
	DefaultMetrics.RPCCallLatency.WithLabelValues(method).Observe(seconds)
}

// RecordDBQuery records database query metrics.
func RecordDBQuery(operation string, seconds float64, err error) {
	DefaultMetrics.DBQueryDuration.WithLabelValues(operation).Observe(seconds)
	if err != nil {
		DefaultMetrics.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// MarkAssessmentSuccess updates the health gauge.
func MarkAssessmentSuccess(unixSeconds int64) {
	DefaultMetrics.LastSuccessfulAssessment.Set(float64(unixSeconds))
}
