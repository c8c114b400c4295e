// Package searchindex makes extracted document text searchable through a
// Qdrant collection.
//
// The collection is payload-only: each point carries the search document's
// fields as payload and is matched through a full-text index on the extracted
// text, no vectors are stored. Points are keyed by the authoritative document
// id, so re-indexing the same document overwrites the previous version.
//
// Index is deliberately fire-and-forget from the caller's perspective: it
// returns a boolean and logs failures itself, distinguishing server-side
// rejections (with the reported error type and reason) from transport-level
// failures. The index and the authoritative metadata store are allowed to
// diverge.
package searchindex
