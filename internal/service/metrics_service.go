package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation for the API and the
// optimization engine.
type MetricsService struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter

	optimizationRuns     prometheus.Counter
	optimizationDuration prometheus.Histogram
	scheduledEvents      prometheus.Gauge
	detectedConflicts    prometheus.Gauge
	successRate          prometheus.Gauge
}

// NewMetricsService registers the core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "result_cache_hits_total",
		Help: "Total optimization result cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "result_cache_misses_total",
		Help: "Total optimization result cache misses",
	})

	optimizationRuns := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "optimization_runs_total",
		Help: "Total optimization passes executed",
	})

	optimizationDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "optimization_duration_seconds",
		Help:    "Duration of optimization passes",
		Buckets: prometheus.DefBuckets,
	})

	scheduledEvents := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "scheduled_events",
		Help: "Events placed by the most recent optimization pass",
	})

	detectedConflicts := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "detected_conflicts",
		Help: "Conflicts reported by the most recent optimization pass",
	})

	successRate := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "optimization_success_rate",
		Help: "Fraction of events placed by the most recent optimization pass",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheHits, cacheMisses,
		optimizationRuns, optimizationDuration, scheduledEvents, detectedConflicts, successRate, goroutines)

	return &MetricsService{
		registry:             registry,
		handler:              promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:      requestDuration,
		requestTotal:         requestTotal,
		cacheHits:            cacheHits,
		cacheMisses:          cacheMisses,
		optimizationRuns:     optimizationRuns,
		optimizationDuration: optimizationDuration,
		scheduledEvents:      scheduledEvents,
		detectedConflicts:    detectedConflicts,
		successRate:          successRate,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records one handled request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordCacheLookup records a result cache hit or miss.
func (m *MetricsService) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHits.Inc()
	} else {
		m.cacheMisses.Inc()
	}
}

// RecordOptimization captures the outcome of one optimization pass.
func (m *MetricsService) RecordOptimization(report models.OptimizationReport, duration time.Duration) {
	if m == nil {
		return
	}
	m.optimizationRuns.Inc()
	m.optimizationDuration.Observe(duration.Seconds())
	m.scheduledEvents.Set(float64(report.ScheduledCount))
	m.detectedConflicts.Set(float64(report.ConflictsCount))
	m.successRate.Set(report.SuccessRate)
}
