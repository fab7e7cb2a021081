package metrics

import (
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_api_requests_total",
			Help: "Total number of API calls issued.",
		},
		[]string{"code", "method", "path"},
	)
	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backoffice_api_request_duration_seconds",
			Help:    "Duration of API calls in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	apiRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "backoffice_api_requests_in_flight",
			Help: "Current number of API calls awaiting a response.",
		},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

// trailing numeric id segment, collapsed to keep label cardinality bounded
var idSegment = regexp.MustCompile(`/\d+$`)

func pathPattern(path string) string {
	return idSegment.ReplaceAllString(path, "/{id}")
}

// RequestStarted marks an API call in flight and returns the completion
// callback to run once the response resolves or the transport fails
// (code 0).
func RequestStarted(method, path string) func(code int) {
	start := time.Now()
	pattern := pathPattern(path)

	apiRequestsInFlight.Inc()

	return func(code int) {
		apiRequestsTotal.WithLabelValues(strconv.Itoa(code), method, pattern).Inc()
		apiRequestDuration.WithLabelValues(method, pattern).Observe(time.Since(start).Seconds())
		apiRequestsInFlight.Dec()
	}
}

// Handler exposes the Prometheus /metrics endpoint for embedding hosts.
func Handler() http.Handler {
	return promhttp.Handler()
}
