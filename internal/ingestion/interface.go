package ingestion

import (
	"context"

	"github.com/google/uuid"

	"github.com/Aleph-Alpha/docindex/internal/document"
)

// Orchestrator sequences the document pipeline: validation, storage, text
// extraction, metadata persistence, and search indexing. It owns the
// mandatory-versus-best-effort decisions and the compensation rules that
// keep the stored file, the metadata record, and the search index from
// diverging on partial failure.
type Orchestrator interface {
	// Ingest runs the full pipeline for an uploaded file and returns the
	// persisted metadata record. Extraction and indexing failures never
	// fail the ingestion; only validation, storage, and persistence do.
	Ingest(ctx context.Context, fileName string, content []byte) (*document.Metadata, error)

	// RegisterMetadataOnly creates a metadata record without any stored
	// content. Nothing is written to storage and nothing is indexed.
	RegisterMetadataOnly(ctx context.Context, fileName string) (*document.Metadata, error)

	// GetDocument fetches a metadata record by id.
	GetDocument(ctx context.Context, id uuid.UUID) (*document.Metadata, error)

	// Search queries the index for documents whose text matches term.
	// A blank term is a validation error; the index is not called.
	Search(ctx context.Context, term string) ([]document.SearchDocument, error)

	// ExtractInvoice pulls structured invoice fields from a stored
	// document's text. A nil result with a nil error means no fields
	// could be derived.
	ExtractInvoice(ctx context.Context, id uuid.UUID) (*document.InvoiceFields, error)
}

type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}
