package repository

import (
	"context"
	"errors"
	"net"

	"gorm.io/gorm"
)

// Standardized persistence errors. These abstract away the underlying
// database-specific error details.
var (
	// ErrNotFound is returned when a query doesn't find any matching records.
	ErrNotFound = errors.New("repository: record not found")

	// ErrIntegrity is returned when a write violates a database constraint
	// (unique key, foreign key, check constraint).
	ErrIntegrity = errors.New("repository: integrity violation")

	// ErrTransient is returned for connectivity and timeout failures that a
	// caller could reasonably retry.
	ErrTransient = errors.New("repository: transient failure")
)

// IsNotFound checks if the error is a "record not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsIntegrity checks if the error is a constraint/integrity failure.
func IsIntegrity(err error) bool {
	return errors.Is(err, ErrIntegrity)
}

// IsRetryable checks if the error is transient and may succeed on retry.
// Integrity violations and not-found are never retryable.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransient)
}

// TranslateError converts GORM/database-specific errors into standardized
// persistence errors. If an error doesn't match any known type, it's returned
// unchanged and should be treated as unexpected.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return errors.Join(ErrIntegrity, err)
	case isConnectivityError(err):
		return errors.Join(ErrTransient, err)
	}

	return err
}

// isConnectivityError reports whether err stems from the connection rather
// than the statement: timeouts, cancellations and network failures.
func isConnectivityError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
