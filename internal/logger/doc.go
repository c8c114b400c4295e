// Package logger provides structured logging for the docindex service.
//
// It wraps Uber's Zap logger with a simplified interface used across the
// service: every method takes a message, an optional error and optional
// structured field maps. The *WithContext variants additionally extract
// OpenTelemetry trace and span IDs from the context when tracing is enabled,
// providing correlation between logs and distributed traces.
//
// Consumer packages should declare their own small Logger interface matching
// the subset of methods they call, so they depend on behavior rather than on
// this package directly:
//
//	type Logger interface {
//	    Info(msg string, err error, fields ...map[string]interface{})
//	    Error(msg string, err error, fields ...map[string]interface{})
//	}
//
// The FXModule provides *logger.Logger to the dependency injection container
// and registers a shutdown hook that flushes buffered entries.
//
// Configuration via environment:
//
//	ZAP_LOGGER_LEVEL=debug          # Log level (debug, info, warning, error)
//	LOGGER_ENABLE_TRACING=true      # Enable distributed tracing integration
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
