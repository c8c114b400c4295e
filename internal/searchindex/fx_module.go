package searchindex

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/docindex/internal/logger"
)

// FXModule defines the Fx module for the searchindex package.
// It provides the Indexer interface backed by Qdrant and ensures the
// configured collection exists on application start.
//
// Dependencies required by this module:
// - A searchindex.Config instance must be available in the dependency injection container
// - A *logger.Logger instance
var FXModule = fx.Module("searchindex",
	fx.Provide(
		func(cfg Config, log *logger.Logger) (*SearchIndex, error) {
			return NewSearchIndex(cfg, log)
		},
		func(s *SearchIndex) Indexer { return s },
	),
	fx.Invoke(RegisterSearchIndexLifecycle),
)

// RegisterSearchIndexLifecycle creates the search collection (and its
// full-text index) at startup when it does not exist yet.
func RegisterSearchIndexLifecycle(lc fx.Lifecycle, s *SearchIndex) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return s.EnsureCollection(ctx)
		},
	})
}
