package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides Prometheus metrics for dscforge extraction runs.
type Metrics struct {
	config MetricsConfig

	// Run metrics
	runsStarted   *prometheus.CounterVec
	runsCompleted *prometheus.CounterVec
	runDuration   *prometheus.HistogramVec

	// Rendering metrics
	blocksRendered      *prometheus.CounterVec
	parametersFormatted *prometheus.CounterVec
	parametersDropped   *prometheus.CounterVec

	// Credential metrics
	credentialsRegistered prometheus.Counter

	// Rewriter metrics
	quoteRewrites *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates a new metrics collector with the given configuration.
func NewMetrics(cfg MetricsConfig) (*Metrics, error) {
	if !cfg.Enabled {
		// Return a no-op metrics instance
		return &Metrics{config: cfg}, nil
	}

	namespace := cfg.Namespace
	buckets := cfg.DefaultHistogramBuckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	registry := prometheus.NewRegistry()

	m := &Metrics{
		config:   cfg,
		registry: registry,

		runsStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_started_total",
				Help:      "Total number of extraction runs started",
			},
			[]string{"manifest"},
		),
		runsCompleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_completed_total",
				Help:      "Total number of extraction runs completed",
			},
			[]string{"status"},
		),
		runDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of extraction run execution in seconds",
				Buckets:   buckets,
			},
			[]string{"status"},
		),

		blocksRendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "blocks_rendered_total",
				Help:      "Total number of resource blocks rendered",
			},
			[]string{"resource_type"},
		),
		parametersFormatted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parameters_formatted_total",
				Help:      "Total number of parameters formatted, by literal kind",
			},
			[]string{"kind"},
		),
		parametersDropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parameters_dropped_total",
				Help:      "Total number of null parameters dropped from blocks",
			},
			[]string{"resource_type"},
		),

		credentialsRegistered: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "credentials_registered_total",
				Help:      "Total number of credential usernames registered",
			},
		),

		quoteRewrites: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quote_rewrites_total",
				Help:      "Total number of quote-boundary rewrites applied",
			},
			[]string{"outcome"},
		),
	}

	collectors := []prometheus.Collector{
		m.runsStarted,
		m.runsCompleted,
		m.runDuration,
		m.blocksRendered,
		m.parametersFormatted,
		m.parametersDropped,
		m.credentialsRegistered,
		m.quoteRewrites,
	}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	return m, nil
}

// RecordRunStarted increments the started-run counter.
func (m *Metrics) RecordRunStarted(manifest string) {
	if m.runsStarted == nil {
		return
	}
	m.runsStarted.WithLabelValues(manifest).Inc()
}

// RecordRunCompleted records a finished run with its duration.
func (m *Metrics) RecordRunCompleted(status string, duration time.Duration) {
	if m.runsCompleted == nil {
		return
	}
	m.runsCompleted.WithLabelValues(status).Inc()
	m.runDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordBlockRendered increments the rendered-block counter.
func (m *Metrics) RecordBlockRendered(resourceType string) {
	if m.blocksRendered == nil {
		return
	}
	m.blocksRendered.WithLabelValues(resourceType).Inc()
}

// RecordParameterFormatted increments the per-kind parameter counter.
func (m *Metrics) RecordParameterFormatted(kind string) {
	if m.parametersFormatted == nil {
		return
	}
	m.parametersFormatted.WithLabelValues(kind).Inc()
}

// RecordParameterDropped increments the dropped-parameter counter.
func (m *Metrics) RecordParameterDropped(resourceType string) {
	if m.parametersDropped == nil {
		return
	}
	m.parametersDropped.WithLabelValues(resourceType).Inc()
}

// RecordCredentialRegistered increments the credential counter.
func (m *Metrics) RecordCredentialRegistered() {
	if m.credentialsRegistered == nil {
		return
	}
	m.credentialsRegistered.Inc()
}

// RecordQuoteRewrite records a rewriter invocation outcome
// ("rewritten" or "unchanged").
func (m *Metrics) RecordQuoteRewrite(outcome string) {
	if m.quoteRewrites == nil {
		return
	}
	m.quoteRewrites.WithLabelValues(outcome).Inc()
}

// Handler returns an HTTP handler exposing the metrics registry, or nil
// when metrics are disabled.
func (m *Metrics) Handler() http.Handler {
	if m.registry == nil {
		return nil
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve starts an HTTP server exposing the metrics endpoint. It blocks
// until the server fails; callers run it in a goroutine.
func (m *Metrics) Serve() error {
	if m.registry == nil {
		return nil
	}
	path := m.config.Path
	if path == "" {
		path = "/metrics"
	}
	mux := http.NewServeMux()
	mux.Handle(path, m.Handler())
	return http.ListenAndServe(m.config.ListenAddress, mux)
}
