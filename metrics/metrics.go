// Package metrics provides Prometheus metrics for the advocates API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by route and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advocates",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// RequestDuration measures HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "advocates",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// SearchResults observes how many records a search returned.
	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "advocates",
			Name:      "search_results",
			Help:      "Distribution of search result sizes",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	// SourceFallbacksTotal counts requests served from seed data because the configured source failed.
	SourceFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "advocates",
			Name:      "source_fallbacks_total",
			Help:      "Total number of record source fallbacks to seed data",
		},
		[]string{"source"},
	)
)

func RecordRequest(route, method, status string, duration float64) {
	RequestsTotal.WithLabelValues(route, method, status).Inc()
	RequestDuration.WithLabelValues(route).Observe(duration)
}

func RecordSearch(results int) {
	SearchResults.Observe(float64(results))
}

func RecordFallback(source string) {
	SourceFallbacksTotal.WithLabelValues(source).Inc()
}
