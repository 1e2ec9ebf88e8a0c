package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dashgrid"

// Metrics implements PipelineHooks, CacheHooks and ServerHooks with
// Prometheus collectors.
type Metrics struct {
	builds        *prometheus.CounterVec
	buildDuration prometheus.Histogram
	assembled     *prometheus.CounterVec
	slots         *prometheus.CounterVec
	renderBytes   *prometheus.HistogramVec
	cacheEvents   *prometheus.CounterVec
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_builds_total",
			Help:      "Chart set builds by outcome.",
		}, []string{"outcome"}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chart_build_seconds",
			Help:      "Time spent constructing charts from a dashboard file.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		assembled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboards_assembled_total",
			Help:      "Dashboards assembled per layout.",
		}, []string{"layout"}),
		slots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plots_total",
			Help:      "Plots placed into slots or left out, per layout.",
		}, []string{"layout", "result"}),
		renderBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_bytes",
			Help:      "Size of rendered dashboard documents.",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		}, []string{"layout"}),
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_events_total",
			Help:      "Cache hits, misses and writes by key type.",
		}, []string{"key_type", "event"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Preview server requests by route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_seconds",
			Help:      "Preview server request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	for _, c := range []prometheus.Collector{
		m.builds, m.buildDuration, m.assembled, m.slots,
		m.renderBytes, m.cacheEvents, m.requests, m.latency,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Register installs m as the pipeline, cache and server hooks.
func (m *Metrics) Register() {
	SetPipelineHooks(m)
	SetCacheHooks(m)
	SetServerHooks(m)
}

func (m *Metrics) OnBuildStart(context.Context, int) {}

func (m *Metrics) OnBuildComplete(_ context.Context, _ int, d time.Duration, err error) {
	m.builds.WithLabelValues(outcome(err)).Inc()
	m.buildDuration.Observe(d.Seconds())
}

func (m *Metrics) OnAssembleStart(context.Context, string, int) {}

func (m *Metrics) OnAssembleComplete(_ context.Context, layout string, placed, dropped int, _ time.Duration) {
	m.assembled.WithLabelValues(layout).Inc()
	m.slots.WithLabelValues(layout, "placed").Add(float64(placed))
	m.slots.WithLabelValues(layout, "dropped").Add(float64(dropped))
}

func (m *Metrics) OnRenderComplete(_ context.Context, layout string, size int, _ time.Duration, err error) {
	if err != nil {
		return
	}
	m.renderBytes.WithLabelValues(layout).Observe(float64(size))
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cacheEvents.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, _ int) {
	m.cacheEvents.WithLabelValues(keyType, "set").Inc()
}

func (m *Metrics) OnRequest(_ context.Context, method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(route).Observe(d.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
