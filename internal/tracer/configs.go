package tracer

// Config controls how the OpenTelemetry tracer provider is set up.
type Config struct {
	// ServiceName identifies this service in exported traces.
	ServiceName string `yaml:"service_name" envconfig:"TRACING_SERVICE_NAME"`

	// AppEnv tags every span with the deployment environment,
	// e.g. "development" or "production".
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport turns on the OTLP HTTP exporter. When false, spans are
	// still created and propagated but never leave the process, which is
	// the right mode for local development and tests.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACING_ENABLE_EXPORT"`
}
