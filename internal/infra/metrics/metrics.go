// Package metrics exposes Prometheus collectors for the HTTP layer and the
// progression engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/contacomigo/backend/internal/application/usecase/dashboard"
	"github.com/contacomigo/backend/internal/domain/entity"
)

const namespace = "contacomigo"

// Metrics holds the application collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	transactions      *prometheus.CounterVec
	xpAwarded         prometheus.Counter
	levelUps          prometheus.Counter
	currentLevel      prometheus.Gauge
	badgeUnlocks      *prometheus.CounterVec
	missionsCompleted *prometheus.CounterVec
	tipsServed        *prometheus.CounterVec
	tipDuration       prometheus.Histogram
	schedulerRuns     *prometheus.CounterVec
}

// New creates the collectors and registers them, together with the process
// and Go runtime collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "transactions_total",
			Help:      "Transactions registered, by type.",
		}, []string{"type"}),
		xpAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "xp_awarded_total",
			Help:      "Experience points awarded.",
		}),
		levelUps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "level_ups_total",
			Help:      "Levels gained.",
		}),
		currentLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "level",
			Help:      "Last level reached.",
		}),
		badgeUnlocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "badge_unlocks_total",
			Help:      "Badges unlocked, by badge id.",
		}, []string{"badge"}),
		missionsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "missions_completed_total",
			Help:      "Missions completed, by mission type.",
		}, []string{"type"}),
		tipsServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tips",
			Name:      "served_total",
			Help:      "Financial tips served, by source.",
		}, []string{"source"}),
		tipDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "tips",
			Name:      "duration_seconds",
			Help:      "Time spent producing a tip.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}),
		schedulerRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "job_runs_total",
			Help:      "Scheduled job runs, by job.",
		}, []string{"job"}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.transactions,
		m.xpAwarded,
		m.levelUps,
		m.currentLevel,
		m.badgeUnlocks,
		m.missionsCompleted,
		m.tipsServed,
		m.tipDuration,
		m.schedulerRuns,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler exposing the registered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latencies keyed by the matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		m.httpInFlight.Inc()
		defer m.httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// TransactionRecorded implements engine.Recorder.
func (m *Metrics) TransactionRecorded(t entity.TransactionType) {
	m.transactions.WithLabelValues(string(t)).Inc()
}

// XPAwarded implements engine.Recorder.
func (m *Metrics) XPAwarded(amount int) {
	m.xpAwarded.Add(float64(amount))
}

// LevelReached implements engine.Recorder.
func (m *Metrics) LevelReached(level int) {
	m.levelUps.Inc()
	m.currentLevel.Set(float64(level))
}

// BadgeUnlocked implements engine.Recorder.
func (m *Metrics) BadgeUnlocked(id string) {
	m.badgeUnlocks.WithLabelValues(id).Inc()
}

// MissionCompleted implements engine.Recorder.
func (m *Metrics) MissionCompleted(t entity.MissionType) {
	m.missionsCompleted.WithLabelValues(string(t)).Inc()
}

// TipServed implements dashboard.TipObserver.
func (m *Metrics) TipServed(source dashboard.TipSource, elapsed time.Duration) {
	m.tipsServed.WithLabelValues(string(source)).Inc()
	m.tipDuration.Observe(elapsed.Seconds())
}

// JobRan counts a scheduled job run.
func (m *Metrics) JobRan(job string) {
	m.schedulerRuns.WithLabelValues(job).Inc()
}
