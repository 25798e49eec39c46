package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ytworth"

type Metrics struct {
	registry *prometheus.Registry

	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RateLimited         prometheus.Counter

	// Business metrics
	EstimatesTotal  *prometheus.CounterVec
	LookupsTotal    *prometheus.CounterVec
	LookupDuration  prometheus.Histogram
	ApplicationInfo *prometheus.GaugeVec
}

// New registers every collector on a fresh registry, plus the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),

		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		RateLimited: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_rate_limited_total",
				Help:      "Requests rejected by the inbound rate limiter",
			},
		),

		EstimatesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "estimates_total",
				Help:      "Completed estimates by payout tier",
			},
			[]string{"tier"},
		),

		LookupsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "statistics_lookups_total",
				Help:      "Statistics lookups by outcome",
			},
			[]string{"result"},
		),

		LookupDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "statistics_lookup_duration_seconds",
				Help:      "Statistics lookup latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),

		ApplicationInfo: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "application_info",
				Help:      "Application information",
			},
			[]string{"version"},
		),
	}
}

func (m *Metrics) Init(version string) {
	m.ApplicationInfo.WithLabelValues(version).Set(1)
}

// service.Recorder
func (m *Metrics) ObserveLookup(result string, elapsed time.Duration) {
	m.LookupsTotal.WithLabelValues(result).Inc()
	m.LookupDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveEstimate(tier string) {
	m.EstimatesTotal.WithLabelValues(tier).Inc()
}

func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func (m *Metrics) RejectedByRateLimit() {
	m.RateLimited.Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
