// Package api is the HTTP surface of the document pipeline.
//
// It stays deliberately thin: handlers decode the request, hand off to the
// ingestion orchestrator, and map error kinds to status codes. No business
// rule lives here.
package api
