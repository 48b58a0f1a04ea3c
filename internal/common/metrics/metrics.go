// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idea_service_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "idea_service_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "idea_service_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)

	IdeasGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idea_service_ideas_generated_total",
			Help: "Total number of ideas produced, by category and mode",
		},
		[]string{"category", "mode"},
	)

	FeasibilityScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "idea_service_feasibility_score",
			Help:    "Distribution of computed feasibility scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	FeasibilityRecommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idea_service_feasibility_recommendations_total",
			Help: "Total number of feasibility recommendations issued, by label",
		},
		[]string{"recommendation"},
	)

	OllamaProbes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "idea_service_ollama_probes_total",
			Help: "Total number of Ollama status probes, by outcome",
		},
		[]string{"status"},
	)
)
