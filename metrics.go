package main

import (
	"errors"

	"github.com/cor0nius/weatherwidget/internal/lookup"
	"github.com/cor0nius/weatherwidget/internal/weatherapi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// This file defines the Prometheus metrics that are exposed by the application.

// httpRequestsTotal is partitioned by the matched route pattern, HTTP method
// and the resulting status code.
var httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "weatherwidget_http_requests_total",
	Help: "Total number of HTTP requests by path, method and code.",
}, []string{"path", "method", "code"})

// lookupsTotal counts finished lookups by outcome.
var lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "weatherwidget_lookups_total",
	Help: "Total number of finished weather lookups by outcome.",
}, []string{"outcome"})

var lookupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "weatherwidget_lookup_duration_seconds",
	Help:    "Duration of finished weather lookups, including the upstream fetch.",
	Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
})

// externalRequestDuration times outbound calls to the weather service by host.
var externalRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "weatherwidget_external_request_duration_seconds",
	Help:    "Duration of outbound HTTP requests by host.",
	Buckets: prometheus.DefBuckets,
}, []string{"host"})

// lookupOutcome names the outcome label for a finished lookup.
func lookupOutcome(r lookup.Result) string {
	if r.State == lookup.StateSuccess {
		return "success"
	}

	var transportErr *weatherapi.TransportError
	var apiErr *weatherapi.APIError
	var decodeErr *weatherapi.DecodeError
	switch {
	case errors.As(r.Err, &transportErr):
		return "transport_error"
	case errors.As(r.Err, &apiErr):
		return "api_error"
	case errors.As(r.Err, &decodeErr):
		return "decode_error"
	default:
		return "error"
	}
}

// recordLookupMetrics is a lookup.Controller subscriber.
func recordLookupMetrics(r lookup.Result) {
	if r.State != lookup.StateSuccess && r.State != lookup.StateFailure {
		return
	}
	lookupsTotal.WithLabelValues(lookupOutcome(r)).Inc()
	lookupDuration.Observe(r.Duration().Seconds())
}
