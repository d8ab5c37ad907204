package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerMetrics struct {
	registry *prometheus.Registry

	storeQueriesTotal    *prometheus.CounterVec
	storeQueryDuration   *prometheus.HistogramVec
	storeErrorsTotal     *prometheus.CounterVec
	cacheLoadsTotal      *prometheus.CounterVec
	cacheEntries         *prometheus.GaugeVec
	toolInvocationsTotal *prometheus.CounterVec
	toolDuration         *prometheus.HistogramVec
	mentionSourceErrors  *prometheus.CounterVec
}

func NewServerMetrics(service string) *ServerMetrics {
	registry := prometheus.NewRegistry()

	storeQueriesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dse",
			Subsystem: "store",
			Name:      "queries_total",
			Help:      "Total queries sent to the document store.",
		},
		[]string{"service", "backend", "operation"},
	)
	storeQueryDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dse",
			Subsystem: "store",
			Name:      "query_duration_seconds",
			Help:      "Document store query duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "backend", "operation"},
	)
	storeErrorsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dse",
			Subsystem: "store",
			Name:      "errors_total",
			Help:      "Total document store failures by error kind.",
		},
		[]string{"service", "backend", "operation", "kind"},
	)
	cacheLoadsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dse",
			Subsystem: "cache",
			Name:      "loads_total",
			Help:      "Total letter snapshot loads by outcome.",
		},
		[]string{"service", "backend", "outcome"},
	)
	cacheEntries := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "dse",
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Number of letters in the loaded snapshot.",
		},
		[]string{"service", "backend"},
	)
	toolInvocationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dse",
			Subsystem: "tool",
			Name:      "invocations_total",
			Help:      "Total tool invocations by status.",
		},
		[]string{"service", "tool", "status"},
	)
	toolDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dse",
			Subsystem: "tool",
			Name:      "duration_seconds",
			Help:      "Tool invocation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "tool"},
	)
	mentionSourceErrors := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dse",
			Subsystem: "mentions",
			Name:      "source_errors_total",
			Help:      "Total per-source failures during mentions aggregation.",
		},
		[]string{"service", "source"},
	)

	registry.MustRegister(
		storeQueriesTotal,
		storeQueryDuration,
		storeErrorsTotal,
		cacheLoadsTotal,
		cacheEntries,
		toolInvocationsTotal,
		toolDuration,
		mentionSourceErrors,
	)

	return &ServerMetrics{
		registry:             registry,
		storeQueriesTotal:    storeQueriesTotal,
		storeQueryDuration:   storeQueryDuration,
		storeErrorsTotal:     storeErrorsTotal,
		cacheLoadsTotal:      cacheLoadsTotal,
		cacheEntries:         cacheEntries,
		toolInvocationsTotal: toolInvocationsTotal,
		toolDuration:         toolDuration,
		mentionSourceErrors:  mentionSourceErrors,
	}
}

func (m *ServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *ServerMetrics) RecordStoreQuery(service, backend, operation string, duration time.Duration) {
	m.storeQueriesTotal.WithLabelValues(service, backend, operation).Inc()
	m.storeQueryDuration.WithLabelValues(service, backend, operation).Observe(duration.Seconds())
}

func (m *ServerMetrics) RecordStoreError(service, backend, operation, kind string) {
	m.storeErrorsTotal.WithLabelValues(service, backend, operation, kind).Inc()
}

func (m *ServerMetrics) RecordCacheLoad(service, backend, outcome string, entries int) {
	m.cacheLoadsTotal.WithLabelValues(service, backend, outcome).Inc()
	if outcome == "ok" {
		m.cacheEntries.WithLabelValues(service, backend).Set(float64(entries))
	}
}

func (m *ServerMetrics) RecordToolInvocation(service, tool, status string, duration time.Duration) {
	m.toolInvocationsTotal.WithLabelValues(service, tool, status).Inc()
	m.toolDuration.WithLabelValues(service, tool).Observe(duration.Seconds())
}

func (m *ServerMetrics) RecordMentionSourceError(service, source string) {
	m.mentionSourceErrors.WithLabelValues(service, source).Inc()
}
