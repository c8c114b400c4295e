package repository

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/docindex/internal/logger"
)

// FXModule defines the Fx module for the repository package.
// It provides the database connection and the Documents repository, and
// registers graceful shutdown of the connection pool.
//
// Dependencies required by this module:
// - A repository.Config instance must be available in the dependency injection container
// - A *logger.Logger instance
var FXModule = fx.Module("repository",
	fx.Provide(
		func(cfg Config, log *logger.Logger) *Postgres {
			return NewPostgres(cfg, log)
		},
		NewDocumentRepository,
		func(r *DocumentRepository) Documents { return r },
	),
	fx.Invoke(RegisterPostgresLifecycle),
)

// RegisterPostgresLifecycle closes the connection pool on application stop.
func RegisterPostgresLifecycle(lc fx.Lifecycle, pg *Postgres) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return pg.GracefulShutdown()
		},
	})
}
