// Package ingestion sequences the document pipeline.
//
// One ingestion runs validate, store, extract, persist, and index in strict
// order. The metadata write is the consistency boundary: it is the only
// mandatory step after storage, and its failure triggers deletion of the
// file written earlier in the same request. Extraction and indexing are
// advisory enrichments whose failure never changes the caller's outcome,
// since coupling intake to the least reliable downstream dependency would
// make document intake only as available as that dependency.
package ingestion
