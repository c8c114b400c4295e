package searchindex

import (
	"context"

	"github.com/Aleph-Alpha/docindex/internal/document"
)

// Indexer writes and queries derived search documents. The index is an
// eventually-consistent, non-authoritative store: a document's absence from it
// is never an error state for the authoritative metadata record.
//
// This interface is implemented by *SearchIndex.
type Indexer interface {
	// Index upserts a search document keyed by its id. It reports success;
	// failures are logged internally and never surfaced as errors because
	// indexing is a best-effort step for every caller in this service.
	// A document with an empty id is a caller error and fails without a
	// network call.
	Index(ctx context.Context, doc document.SearchDocument) bool

	// Search returns documents whose extracted text matches the term,
	// capped at limit results.
	Search(ctx context.Context, term string, limit int) ([]document.SearchDocument, error)
}

// Logger is an interface that matches the internal/logger.Logger methods used
// by this package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}
