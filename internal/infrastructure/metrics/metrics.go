package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ArtMinds API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "artminds",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "artminds",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"method", "endpoint"},
	)

	// Generation counters
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "artminds",
			Subsystem: "api",
			Name:      "generations_total",
			Help:      "Total generation requests by style and outcome",
		},
		[]string{"style", "status"},
	)

	// Credits spent counter
	CreditsSpentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "artminds",
			Subsystem: "api",
			Name:      "credits_spent_total",
			Help:      "Total credits deducted for successful generations",
		},
	)

	// Provider call counters
	ProviderCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "artminds",
			Subsystem: "api",
			Name:      "provider_calls_total",
			Help:      "Total external provider calls",
		},
		[]string{"provider", "status"},
	)

	// Provider call duration
	ProviderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "artminds",
			Subsystem: "api",
			Name:      "provider_duration_seconds",
			Help:      "External provider call duration in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"provider"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordGeneration records a generation attempt outcome
func RecordGeneration(style, status string) {
	GenerationsTotal.WithLabelValues(style, status).Inc()
}

// RecordCreditsSpent records credits deducted for a successful generation
func RecordCreditsSpent(credits float64) {
	CreditsSpentTotal.Add(credits)
}

// RecordProviderCall records an external provider call
func RecordProviderCall(provider, status string, durationSec float64) {
	ProviderCallsTotal.WithLabelValues(provider, status).Inc()
	ProviderDuration.WithLabelValues(provider).Observe(durationSec)
}
