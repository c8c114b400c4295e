// Package repository persists authoritative document metadata in PostgreSQL
// through GORM.
//
// The repository is a pure persistence boundary: it assigns no defaults and
// owns no business rules; id, timestamp and initial status are set by the
// ingestion orchestrator before Create is called.
//
// Errors returned by the repository are translated to three sentinel kinds:
// ErrNotFound, ErrIntegrity (constraint violations, never retryable) and
// ErrTransient (connectivity/timeout failures, retryable by future callers).
// Anything else passes through untranslated and is treated as unexpected.
package repository
