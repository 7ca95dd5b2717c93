// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "jobapp_search_requests_total",
			Help: "Total number of outbound job search requests",
		},
	)

	SearchFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobapp_search_failures_total",
			Help: "Total number of job searches degraded to an empty result",
		},
		[]string{"reason"},
	)

	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "jobapp_search_duration_seconds",
			Help: "Duration of outbound job search requests in seconds",
		},
	)

	ApplicationsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobapp_applications_created_total",
			Help: "Total number of application records created",
		},
		[]string{"source"},
	)

	ApplicationStatusUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobapp_application_status_updates_total",
			Help: "Total number of application status updates by result",
		},
		[]string{"result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "jobapp_http_request_duration_seconds",
			Help: "Duration of inbound HTTP requests in seconds",
		},
		[]string{"method", "path", "status"},
	)
)

// Search failure reasons used as the "reason" label value.
const (
	ReasonNetwork  = "network"
	ReasonTimeout  = "timeout"
	ReasonStatus   = "status"
	ReasonBadBody  = "bad_body"
	ReasonBadShape = "bad_shape"
)
