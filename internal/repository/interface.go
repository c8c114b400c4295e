package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Aleph-Alpha/docindex/internal/document"
)

// Documents is the persistence boundary for authoritative document metadata.
//
// Implementations assign no defaults: id, timestamp and initial status are the
// caller's responsibility. Errors surfaced by the methods are translated to
// the package's sentinel kinds so that callers can distinguish integrity
// failures from transient connectivity failures.
//
// This interface is implemented by *DocumentRepository.
type Documents interface {
	// Create persists a new metadata record.
	Create(ctx context.Context, meta *document.Metadata) error

	// GetByID returns the record with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*document.Metadata, error)
}

// Logger is an interface that matches the internal/logger.Logger methods used
// by this package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}
