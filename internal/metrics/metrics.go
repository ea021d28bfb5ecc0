package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowintel_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"}, // GET, /api/entities, 200
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flowintel_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "route"},
	)

	ValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowintel_validation_errors_total",
			Help: "Total number of requests rejected for invalid parameters",
		},
		[]string{"route"},
	)

	// Query metrics
	RecordsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowintel_records_generated_total",
			Help: "Total number of synthetic records generated by collection queries",
		},
		[]string{"kind"}, // entities, transactions, pools, alerts, search
	)

	RecordsReturned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowintel_records_returned_total",
			Help: "Total number of records left after filtering",
		},
		[]string{"kind"},
	)

	// Fraction of a generated batch that survived the filters
	FilterYield = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "flowintel_filter_yield_ratio",
			Help:    "Ratio of returned to generated records per query",
			Buckets: []float64{0, .1, .2, .3, .4, .5, .6, .7, .8, .9, 1},
		},
		[]string{"kind"},
	)

	// Harness metrics
	ChecksRun = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowintel_apicheck_checks_total",
			Help: "Total number of harness checks run",
		},
		[]string{"status"}, // pass/fail
	)

	// Storage metrics
	StoragePings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowintel_storage_pings_total",
			Help: "Total number of storage pings",
		},
		[]string{"status"}, // success/error
	)

	StoragePingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "flowintel_storage_ping_duration_seconds",
			Help:    "Duration of storage pings",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	// System health
	HealthChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flowintel_health_checks_total",
			Help: "Total number of health check requests",
		},
		[]string{"status"}, // healthy/unhealthy
	)
)

// RecordHTTPRequest records HTTP request metrics
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordValidationError records a rejected request
func RecordValidationError(route string) {
	ValidationErrors.WithLabelValues(route).Inc()
}

// RecordQuery records how many records a query generated and how many it returned
func RecordQuery(kind string, generated, returned int) {
	RecordsGenerated.WithLabelValues(kind).Add(float64(generated))
	RecordsReturned.WithLabelValues(kind).Add(float64(returned))
	if generated > 0 {
		FilterYield.WithLabelValues(kind).Observe(float64(returned) / float64(generated))
	}
}

// RecordCheck records a harness check outcome
func RecordCheck(passed bool) {
	status := "pass"
	if !passed {
		status = "fail"
	}
	ChecksRun.WithLabelValues(status).Inc()
}

// RecordStoragePing records storage ping metrics
func RecordStoragePing(duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	StoragePings.WithLabelValues(status).Inc()
	StoragePingDuration.Observe(duration.Seconds())
}

// RecordHealthCheck records health check status
func RecordHealthCheck(healthy bool) {
	status := "healthy"
	if !healthy {
		status = "unhealthy"
	}
	HealthChecks.WithLabelValues(status).Inc()
}
