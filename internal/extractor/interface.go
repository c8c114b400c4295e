package extractor

import "context"

// Extractor turns a stored PDF into plain text.
//
// This interface is implemented by *TextExtractor.
type Extractor interface {
	// Extract returns the document's text with pages in document order,
	// joined by a newline separator. It returns ErrFileNotFound when no file
	// exists at the location and ErrExtractionFailed when a file is present
	// but cannot be processed.
	Extract(ctx context.Context, location string) (string, error)
}

// Logger is an interface that matches the internal/logger.Logger methods used
// by this package.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
}
