package storage

import (
	"errors"
	"io/fs"
	"os"
)

// Common storage errors
var (
	// ErrNotConfigured is returned when the store cannot be constructed
	// because its location setting is missing.
	ErrNotConfigured = errors.New("storage: base path is not configured")

	// ErrIO is the kind wrapped around read/write failures of the backing medium.
	ErrIO = errors.New("storage: i/o failure")

	// ErrPermission is the kind wrapped around access-denied failures.
	ErrPermission = errors.New("storage: permission denied")
)

// IsPermission checks if the error is an access-denied storage failure.
func IsPermission(err error) bool {
	return errors.Is(err, ErrPermission)
}

// IsIO checks if the error is an i/o storage failure.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// classifyOSError maps operating system errors onto the package's error kinds.
// Errors that are neither permission nor i/o related are returned unchanged so
// callers can treat them as unexpected.
func classifyOSError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, fs.ErrPermission):
		return errors.Join(ErrPermission, err)
	case isIOError(err):
		return errors.Join(ErrIO, err)
	}

	return err
}

// isIOError reports whether err is a failure of the backing medium rather than
// a logic error. *fs.PathError and *os.LinkError cover the file operations this
// package performs.
func isIOError(err error) bool {
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	return errors.As(err, &pathErr) || errors.As(err, &linkErr)
}
