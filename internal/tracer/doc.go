// Package tracer provides distributed tracing with OpenTelemetry.
//
// It wraps the OpenTelemetry SDK behind a small API: StartSpan and
// RecordErrorOnSpan for instrumenting operations, SetAttributes for span
// metadata, and GetCarrier / SetCarrierOnContext for carrying W3C trace
// context across service boundaries. Export goes over OTLP HTTP when
// enabled; otherwise spans stay in-process, which keeps local runs and
// tests free of external dependencies.
package tracer
