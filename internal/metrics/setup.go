package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels shared by the pipeline counters.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeSkipped = "skipped"
)

// Metrics encapsulates the Prometheus registry and the HTTP server exposing
// the /metrics endpoint, together with the counters the ingestion pipeline
// reports into.
type Metrics struct {
	Server   *http.Server
	Registry *prometheus.Registry

	ingestedTotal    *prometheus.CounterVec
	extractionsTotal *prometheus.CounterVec
	indexOpsTotal    *prometheus.CounterVec
	searchesTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

// NewMetrics sets up a dedicated registry, registers the pipeline collectors
// under a constant service label, and prepares an HTTP server serving
// /metrics on the configured address.
func NewMetrics(cfg Config) *Metrics {
	if cfg.Address == "" {
		cfg.Address = DefaultMetricsAddress
	}

	// Each service keeps its own registry so metric names cannot collide
	// when several services run in one process.
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.ingestedTotal = createCounterVec("documents_ingested_total", "Total number of document ingestions", []string{"outcome"})
	m.extractionsTotal = createCounterVec("text_extractions_total", "Total number of text extraction attempts", []string{"outcome"})
	m.indexOpsTotal = createCounterVec("index_operations_total", "Total number of search index writes", []string{"outcome"})
	m.searchesTotal = createCounterVec("searches_total", "Total number of search queries", []string{"outcome"})
	m.requestDuration = createHistogramVec("request_duration_seconds", "Duration of HTTP requests in seconds", []string{"endpoint"}, prometheus.DefBuckets)

	wrappedRegistry.MustRegister(
		m.ingestedTotal,
		m.extractionsTotal,
		m.indexOpsTotal,
		m.searchesTotal,
		m.requestDuration,
	)

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}
	return m
}

func (m *Metrics) IncrementIngested(outcome string) {
	m.ingestedTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementExtractions(outcome string) {
	m.extractionsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementIndexOps(outcome string) {
	m.indexOpsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementSearches(outcome string) {
	m.searchesTotal.WithLabelValues(outcome).Inc()
}

// RecordRequestDuration observes the elapsed time since start for an endpoint.
func (m *Metrics) RecordRequestDuration(start time.Time, endpoint string) {
	m.requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
