package metrics

import "time"

// Recorder is the surface the rest of the application reports metrics
// through. It is implemented by *Metrics.
type Recorder interface {
	// IncrementIngested counts a document ingestion by outcome.
	IncrementIngested(outcome string)

	// IncrementExtractions counts a text extraction attempt by outcome.
	IncrementExtractions(outcome string)

	// IncrementIndexOps counts a search index write by outcome.
	IncrementIndexOps(outcome string)

	// IncrementSearches counts a search query by outcome.
	IncrementSearches(outcome string)

	// RecordRequestDuration records the time spent handling an endpoint.
	RecordRequestDuration(start time.Time, endpoint string)
}
