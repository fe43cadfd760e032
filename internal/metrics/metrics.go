package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	InvocationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "issuecreator_invocations_total", Help: "Issue invocations"},
		[]string{"mode", "outcome"},
	)
	InvocationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "issuecreator_invocation_duration_seconds",
			Help:    "Time spent in one issue invocation",
			Buckets: prometheus.DefBuckets,
		},
	)
	TestSendsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "issuecreator_test_sends_total", Help: "Preview sends by outcome"},
		[]string{"outcome"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "issuecreator_http_requests_total", Help: "HTTP requests"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "issuecreator_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Invocation modes and outcomes used as label values.
const (
	ModeDryRun = "dry_run"
	ModeLive   = "live"

	OutcomeOK    = "ok"
	OutcomeError = "error"
)

func init() {
	prometheus.MustRegister(
		InvocationsTotal, InvocationDuration, TestSendsTotal,
		HTTPRequestsTotal, HTTPRequestDuration,
	)
}

func Handler() http.Handler { return promhttp.Handler() }
