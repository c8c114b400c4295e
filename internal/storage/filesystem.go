package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore persists uploaded content as a flat directory of files under a
// configured base path. Concurrent writers use distinct generated names and
// never collide; the directory is treated as append-only by the pipeline.
type FileStore struct {
	basePath string
	logger   Logger
}

// NewFileStore creates a FileStore rooted at cfg.BasePath.
// A missing base path setting is a configuration error: the upload path cannot
// operate without one, so construction fails instead of deferring the problem
// to the first request.
func NewFileStore(cfg Config, logger Logger) (*FileStore, error) {
	if cfg.BasePath == "" {
		return nil, ErrNotConfigured
	}

	abs, err := filepath.Abs(cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("storage: resolving base path %q: %w", cfg.BasePath, err)
	}

	return &FileStore{
		basePath: abs,
		logger:   logger,
	}, nil
}

// BasePath returns the absolute directory files are written under.
func (s *FileStore) BasePath() string {
	return s.basePath
}

// Write stores the reader's contents as {basePath}/{name} and returns the
// absolute file path. The base directory is created if absent. Content is
// first written to a temporary file in the same directory and then renamed,
// so an interrupted copy never leaves a partial file under the final name.
func (s *FileStore) Write(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return "", classifyOSError(err)
	}

	finalPath := filepath.Join(s.basePath, name)

	tmp, err := os.CreateTemp(s.basePath, name+".*.partial")
	if err != nil {
		return "", classifyOSError(err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		s.discard(tmpPath)
		return "", classifyOSError(err)
	}

	if err := tmp.Close(); err != nil {
		s.discard(tmpPath)
		return "", classifyOSError(err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		s.discard(tmpPath)
		return "", classifyOSError(err)
	}

	return finalPath, nil
}

// Delete removes the file at the given location. A location that no longer
// exists is treated as already deleted.
func (s *FileStore) Delete(ctx context.Context, location string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(location)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return classifyOSError(err)
	}
	return nil
}

// Exists reports whether a regular file is present at the given location.
func (s *FileStore) Exists(ctx context.Context, location string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	info, err := os.Stat(location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, classifyOSError(err)
	}
	return info.Mode().IsRegular(), nil
}

// discard removes a temporary file left behind by a failed write. Failure to
// remove it only costs disk space, so it is logged and not propagated.
func (s *FileStore) discard(tmpPath string) {
	if err := os.Remove(tmpPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		if s.logger != nil {
			s.logger.Warn("Failed to remove temporary file after aborted write", err, map[string]interface{}{
				"path": tmpPath,
			})
		}
	}
}
