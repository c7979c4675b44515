package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mamta",
			Subsystem: "server",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mamta",
			Subsystem: "server",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	// Conversation turn counter
	ChatTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mamta",
			Subsystem: "server",
			Name:      "chat_turns_total",
			Help:      "Total conversation turns processed",
		},
		[]string{"status"},
	)

	// Upstream Gemini call duration
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mamta",
			Subsystem: "server",
			Name:      "upstream_duration_seconds",
			Help:      "Gemini API call duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"operation", "status"},
	)

	// Relayed upload volume
	UploadBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mamta",
			Subsystem: "server",
			Name:      "upload_bytes_total",
			Help:      "Total bytes relayed to the provider file store",
		},
	)

	// Live session gauge
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mamta",
			Subsystem: "server",
			Name:      "active_sessions",
			Help:      "Sessions held in the in-memory registry",
		},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordChatTurn records a completed or failed conversation turn
func RecordChatTurn(status string) {
	ChatTurnsTotal.WithLabelValues(status).Inc()
}

// RecordUpstream records a Gemini API call
func RecordUpstream(operation, status string, durationSec float64) {
	UpstreamDuration.WithLabelValues(operation, status).Observe(durationSec)
}

// AddUploadBytes accounts for bytes relayed to the file store
func AddUploadBytes(n int) {
	UploadBytesTotal.Add(float64(n))
}

// SetActiveSessions sets the live session count
func SetActiveSessions(n int) {
	ActiveSessions.Set(float64(n))
}
