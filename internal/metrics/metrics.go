package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "tjbuilding_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	cacheLookups *prometheus.CounterVec
	openSessions prometheus.Gauge
	reapedTotal  prometheus.Counter

	reportExportTotal   *prometheus.CounterVec
	reportExportLatency *prometheus.HistogramVec

	seededRows prometheus.Counter
)

// Init registers the application metrics with the default registry. It is
// safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)

		cacheLookups = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "session_cache_lookups_total",
				Help: "Session cache lookups by record kind and outcome",
			},
			[]string{"kind", "outcome"},
		)
		openSessions = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "open_sessions",
				Help: "Floor-plan sessions currently open",
			},
		)
		reapedTotal = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "sessions_reaped_total",
				Help: "Idle sessions closed by the reaper",
			},
		)

		reportExportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_export_total",
				Help: "Total floor report exports by format and result",
			},
			[]string{"format", "result"},
		)
		reportExportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_export_latency_seconds",
				Help:    "Floor report export latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)

		seededRows = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "statistics_seeded_rows_total",
				Help: "room_statistics rows written by the seeder",
			},
		)

		prometheus.MustRegister(
			httpRequests,
			httpLatency,
			cacheLookups,
			openSessions,
			reapedTotal,
			reportExportTotal,
			reportExportLatency,
			seededRows,
		)
	})
}

// ObserveHTTP records one served request.
func ObserveHTTP(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	if httpRequests != nil {
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	}
	if httpLatency != nil {
		httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
	}
}

// CacheObserver counts session cache hits and misses.
type CacheObserver struct{}

func (CacheObserver) CacheHit(kind string) {
	if cacheLookups != nil {
		cacheLookups.WithLabelValues(kind, "hit").Inc()
	}
}

func (CacheObserver) CacheMiss(kind string) {
	if cacheLookups != nil {
		cacheLookups.WithLabelValues(kind, "miss").Inc()
	}
}

// SetOpenSessions reports the size of the session registry.
func SetOpenSessions(n int) {
	if openSessions != nil {
		openSessions.Set(float64(n))
	}
}

func AddReaped(n int) {
	if reapedTotal != nil && n > 0 {
		reapedTotal.Add(float64(n))
	}
}

// ObserveReportExport records export latency and result.
func ObserveReportExport(format, result string, duration time.Duration) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = ResultSuccess
	}
	if reportExportTotal != nil {
		reportExportTotal.WithLabelValues(format, result).Inc()
	}
	if reportExportLatency != nil {
		reportExportLatency.WithLabelValues(format, result).Observe(duration.Seconds())
	}
}

func AddSeededRows(n int) {
	if seededRows != nil && n > 0 {
		seededRows.Add(float64(n))
	}
}
