// Package metrics exposes Prometheus metrics for the ingestion pipeline.
//
// The package keeps its own registry, labels every metric with the service
// name, and serves the /metrics endpoint on its own HTTP server so scraping
// stays independent of the API surface.
package metrics
