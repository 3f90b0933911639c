package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AgentCallLatency is the analysis agent round trip in milliseconds.
	AgentCallLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agent_call_latency_ms",
			Help:    "Analysis agent call latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(100, 2, 10),
		},
		[]string{"endpoint", "status"},
	)

	// DocumentsProcessed counts documents reaching a terminal state.
	DocumentsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "documents_processed_total",
			Help: "Uploaded documents by terminal status",
		},
		[]string{"status"},
	)

	// ScheduleGenerations counts schedule generation attempts.
	ScheduleGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedule_generations_total",
			Help: "Schedule generation attempts by result",
		},
		[]string{"result"},
	)

	// RecommendationDecisions counts recommendation lifecycle events.
	RecommendationDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_events_total",
			Help: "Recommendations created, accepted, dismissed or expired",
		},
		[]string{"event"},
	)

	// HTTPRequestDuration is the API request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"method", "path", "status"},
	)
)

// RecordAgentCall records one agent call.
func RecordAgentCall(endpoint, status string, d time.Duration) {
	AgentCallLatency.WithLabelValues(endpoint, status).Observe(float64(d.Milliseconds()))
}

// RecordDocument records a document reaching status.
func RecordDocument(status string) {
	DocumentsProcessed.WithLabelValues(status).Inc()
}

// RecordSchedule records a generation result: generated, busy or failed.
func RecordSchedule(result string) {
	ScheduleGenerations.WithLabelValues(result).Inc()
}

// RecordRecommendation records a recommendation event.
func RecordRecommendation(event string, n int) {
	RecommendationDecisions.WithLabelValues(event).Add(float64(n))
}

// RecordHTTPRequest records one API request.
func RecordHTTPRequest(method, path, status string, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(d.Seconds())
}
