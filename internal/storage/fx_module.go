package storage

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/docindex/internal/logger"
)

// FXModule defines the Fx module for the storage package.
// It provides the Store interface backed by the configured backend.
//
// Dependencies required by this module:
// - A storage.Config instance must be available in the dependency injection container
// - A *logger.Logger instance for background warnings
var FXModule = fx.Module("storage",
	fx.Provide(
		func(cfg Config, log *logger.Logger) (Store, error) {
			return NewStore(cfg, log)
		},
	),
)
