// Package metrics defines the Prometheus collectors exposed at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all custom noteshub Prometheus metrics.
// Uses an isolated prometheus.Registry so noteshub metrics don't collide
// with the global default registry. Each test gets its own Metrics instance.
type Metrics struct {
	Registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds *prometheus.HistogramVec

	// Content mapping metrics
	ContentScansTotal          *prometheus.CounterVec
	ContentScanDurationSeconds prometheus.Histogram
	PostsIndexed               *prometheus.GaugeVec

	// Page cache metrics
	PageCacheTotal *prometheus.CounterVec

	// Watcher metrics
	WatcherReloadsTotal prometheus.Counter

	// Build info
	BuildInfo *prometheus.GaugeVec
}

// NewMetrics creates a new Metrics instance with all collectors registered
// on an isolated registry. The version and goVersion are recorded as labels
// on the noteshub_info gauge.
func NewMetrics(version, goVersion string) *Metrics {
	reg := prometheus.NewRegistry()

	// Standard Go runtime + process metrics
	reg.MustRegister(prometheus.NewGoCollector())
	reg.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "noteshub_http_requests_total",
				Help: "Total number of HTTP requests served.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "noteshub_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		ContentScansTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "noteshub_content_scans_total",
				Help: "Total number of content tree scans.",
			},
			[]string{"result"},
		),
		ContentScanDurationSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "noteshub_content_scan_duration_seconds",
				Help:    "Duration of content tree scans in seconds.",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
			},
		),
		PostsIndexed: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "noteshub_posts_indexed",
				Help: "Number of posts in the most recent listing, per locale.",
			},
			[]string{"locale"},
		),

		PageCacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "noteshub_page_cache_total",
				Help: "Page cache lookups by result.",
			},
			[]string{"result"},
		),

		WatcherReloadsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "noteshub_watcher_reloads_total",
				Help: "Total number of cache invalidations triggered by content changes.",
			},
		),

		BuildInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "noteshub_info",
				Help: "Build information for the running noteshub instance.",
			},
			[]string{"version", "go_version"},
		),
	}

	// Register all collectors
	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDurationSeconds,
		m.ContentScansTotal,
		m.ContentScanDurationSeconds,
		m.PostsIndexed,
		m.PageCacheTotal,
		m.WatcherReloadsTotal,
		m.BuildInfo,
	)

	// Set build info gauge (always 1, labels carry the data)
	m.BuildInfo.WithLabelValues(version, goVersion).Set(1)

	return m
}

// Handler returns an http.Handler that serves the Prometheus metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
