package ingestion

import (
	"errors"
	"fmt"
)

// ErrValidation is the base kind for all client-correctable input errors.
// Every validation failure wraps it, so callers can match the kind with
// errors.Is without enumerating the individual causes.
var ErrValidation = errors.New("ingestion: validation failed")

var (
	// ErrEmptyFile signals an upload with no content.
	ErrEmptyFile = errors.New("no file uploaded or file is empty")
	// ErrNoExtension signals a file name without an extension.
	ErrNoExtension = errors.New("file name has no extension")
	// ErrUnsupportedType signals an extension other than the accepted one.
	ErrUnsupportedType = errors.New("only PDF files are supported")
	// ErrFileTooLarge signals an upload over the configured size limit.
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
	// ErrNameRequired signals a metadata-only registration without a name.
	ErrNameRequired = errors.New("file name is required")
	// ErrNameTooLong signals a display name over the allowed length.
	ErrNameTooLong = errors.New("file name exceeds the maximum length")
	// ErrEmptySearchTerm signals a search with a blank term.
	ErrEmptySearchTerm = errors.New("search term must not be empty")
)

// ErrNoStoredContent signals an operation that needs the document's file
// when the record has no stored content behind it.
var ErrNoStoredContent = errors.New("ingestion: document has no stored content")

// IsValidation reports whether err is a client-correctable input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func validationError(cause error) error {
	return fmt.Errorf("%w: %w", ErrValidation, cause)
}
