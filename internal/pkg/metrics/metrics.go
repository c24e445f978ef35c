// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by route and status
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tpo_http_requests_total",
		Help: "HTTP requests handled, by method, route and status code.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tpo_http_request_duration_seconds",
		Help:    "HTTP request latency, by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// ImportRows counts CSV import rows by kind and outcome (imported, invalid, failed)
	ImportRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tpo_import_rows_total",
		Help: "CSV import rows processed, by record kind and outcome.",
	}, []string{"kind", "outcome"})

	// Exports counts generated spreadsheets by kind
	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tpo_exports_total",
		Help: "Spreadsheet exports generated, by record kind.",
	}, []string{"kind"})

	// RateLimited counts requests rejected by the rate limiter
	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tpo_rate_limited_total",
		Help: "Requests rejected by the rate limiter, by route.",
	}, []string{"route"})
)

// ImportRowObserver returns a callback that records import row outcomes for kind
func ImportRowObserver(kind string) func(outcome string) {
	return func(outcome string) {
		ImportRows.WithLabelValues(kind, outcome).Inc()
	}
}
