// Package metrics exposes Prometheus collectors for the client core.
package metrics

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var (
    GatewayRequestsTotal = promauto.NewCounterVec(
        prometheus.CounterOpts{
            Name: "cinecatch_gateway_requests_total",
            Help: "Total requests sent to the Cine Catch backend",
        },
        []string{"resource", "outcome"},
    )

    GatewayRequestDuration = promauto.NewHistogramVec(
        prometheus.HistogramOpts{
            Name:    "cinecatch_gateway_request_duration_seconds",
            Help:    "Backend request duration in seconds",
            Buckets: prometheus.DefBuckets,
        },
        []string{"resource"},
    )

    LocationFallbacksTotal = promauto.NewCounterVec(
        prometheus.CounterOpts{
            Name: "cinecatch_location_fallbacks_total",
            Help: "Location requests that fell back to the default coordinate",
        },
        []string{"reason"},
    )

    CacheResultsTotal = promauto.NewCounterVec(
        prometheus.CounterOpts{
            Name: "cinecatch_cache_results_total",
            Help: "Response cache lookups by result",
        },
        []string{"result"},
    )
)
