package extractor

import "errors"

// Extraction errors
var (
	// ErrFileNotFound is returned when no file exists at the given location.
	ErrFileNotFound = errors.New("extractor: file not found")

	// ErrExtractionFailed is returned when a file is present but its text
	// could not be extracted (corrupt or unsupported document).
	ErrExtractionFailed = errors.New("extractor: text extraction failed")
)

// IsFileNotFound checks if the error indicates a missing input file.
func IsFileNotFound(err error) bool {
	return errors.Is(err, ErrFileNotFound)
}
