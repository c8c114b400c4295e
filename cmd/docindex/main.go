package main

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/docindex/internal/api"
	"github.com/Aleph-Alpha/docindex/internal/config"
	"github.com/Aleph-Alpha/docindex/internal/extractor"
	"github.com/Aleph-Alpha/docindex/internal/ingestion"
	"github.com/Aleph-Alpha/docindex/internal/logger"
	"github.com/Aleph-Alpha/docindex/internal/metrics"
	"github.com/Aleph-Alpha/docindex/internal/repository"
	"github.com/Aleph-Alpha/docindex/internal/searchindex"
	"github.com/Aleph-Alpha/docindex/internal/storage"
	"github.com/Aleph-Alpha/docindex/internal/structured"
	"github.com/Aleph-Alpha/docindex/internal/tracer"
)

func main() {
	app := fx.New(
		config.FXModule,
		logger.FXModule,
		tracer.FXModule,
		metrics.FXModule,
		storage.FXModule,
		repository.FXModule,
		searchindex.FXModule,
		extractor.FXModule,
		structured.FXModule,
		ingestion.FXModule,
		api.FXModule,
	)

	app.Run()
}
