package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics собирает показатели HTTP и конвейера представлений.
// Методы безопасны для nil-получателя.
type Metrics struct {
	registry          *prometheus.Registry
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	viewsDegraded     *prometheus.CounterVec
	snapshotSize      *prometheus.GaugeVec
	refreshErrors     prometheus.Counter
	refreshDuration   prometheus.Histogram
	dispatches        *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		viewsDegraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_views_degraded_total",
			Help: "Views rendered with a skipped filter or sort stage.",
		}, []string{"view"}),
		snapshotSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "dashboard_snapshot_records",
			Help: "Number of records in the current snapshot of each collection.",
		}, []string{"collection"}),
		refreshErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_refresh_errors_total",
			Help: "Total failed snapshot refreshes.",
		}),
		refreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dashboard_refresh_duration_seconds",
			Help:    "Histogram of snapshot refresh durations.",
			Buckets: prometheus.DefBuckets,
		}),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "emergency_dispatches_total",
			Help: "Resource dispatches by resource type.",
		}, []string{"type"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpDuration,
		m.viewsDegraded,
		m.snapshotSize,
		m.refreshErrors,
		m.refreshDuration,
		m.dispatches,
	)
	return m
}

// Middleware считает запросы по шаблону маршрута, а не по фактическому пути
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ViewDegraded(view string) {
	if m == nil {
		return
	}
	m.viewsDegraded.WithLabelValues(view).Inc()
}

func (m *Metrics) SnapshotLoaded(collection string, size int) {
	if m == nil {
		return
	}
	m.snapshotSize.WithLabelValues(collection).Set(float64(size))
}

func (m *Metrics) RefreshFinished(duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.refreshDuration.Observe(duration.Seconds())
	if err != nil {
		m.refreshErrors.Inc()
	}
}

func (m *Metrics) ResourceDispatched(resourceType string) {
	if m == nil {
		return
	}
	m.dispatches.WithLabelValues(resourceType).Inc()
}
