package config

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/docindex/internal/api"
	"github.com/Aleph-Alpha/docindex/internal/ingestion"
	"github.com/Aleph-Alpha/docindex/internal/logger"
	"github.com/Aleph-Alpha/docindex/internal/metrics"
	"github.com/Aleph-Alpha/docindex/internal/repository"
	"github.com/Aleph-Alpha/docindex/internal/searchindex"
	"github.com/Aleph-Alpha/docindex/internal/storage"
	"github.com/Aleph-Alpha/docindex/internal/structured"
	"github.com/Aleph-Alpha/docindex/internal/tracer"
)

// FXModule loads the application configuration once and hands each component
// its own slice of it.
var FXModule = fx.Module("config",
	fx.Provide(
		Load,
		func(c *AppConfig) logger.Config { return c.Logger },
		func(c *AppConfig) *api.Config { return &c.API },
		func(c *AppConfig) storage.Config { return c.Storage },
		func(c *AppConfig) repository.Config { return c.Database },
		func(c *AppConfig) searchindex.Config { return c.SearchIndex },
		func(c *AppConfig) *structured.Config { return &c.Structured },
		func(c *AppConfig) *ingestion.Config { return &c.Ingestion },
		func(c *AppConfig) metrics.Config { return c.Metrics },
		func(c *AppConfig) tracer.Config { return c.Tracer },
	),
)
