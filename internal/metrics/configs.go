package metrics

// DefaultMetricsAddress is used when no listen address is configured.
const DefaultMetricsAddress = ":9090"

// Config controls how Prometheus metrics are exposed.
type Config struct {
	// Address is the network address the metrics HTTP server listens on,
	// e.g. ":9090" or "127.0.0.1:9100".
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// EnableDefaultCollectors controls whether the built-in Go runtime and
	// process collectors are registered alongside the pipeline metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// ServiceName is attached as a constant "service" label to every metric,
	// so multiple services can share one Prometheus cluster.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}
