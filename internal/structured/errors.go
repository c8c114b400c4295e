package structured

import "errors"

var (
	// ErrNotConfigured signals that no completion endpoint is set.
	ErrNotConfigured = errors.New("structured: extraction endpoint not configured")
	// ErrRequestFailed signals a failed call to the completion service.
	ErrRequestFailed = errors.New("structured: completion request failed")
)
