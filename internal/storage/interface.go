package storage

import (
	"context"
	"io"
)

// Store provides durable content storage for uploaded documents.
//
// Implementations must guarantee that a failed Write never leaves a partially
// written object discoverable under the final name, and that the backing
// location (directory, bucket) is created on first use.
//
// This interface is implemented by *FileStore and *ObjectStore.
type Store interface {
	// Write persists the reader's contents under the given name and returns
	// the location the content can later be addressed by (an absolute path
	// for filesystem storage, an object key for object storage).
	Write(ctx context.Context, name string, r io.Reader) (string, error)

	// Delete removes previously written content. Deleting a location that no
	// longer exists is not an error.
	Delete(ctx context.Context, location string) error

	// Exists reports whether content is retrievable at the given location.
	Exists(ctx context.Context, location string) (bool, error)
}

// Logger is an interface that matches the internal/logger.Logger methods used
// by this package.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}
