package ingestion

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/docindex/internal/extractor"
	"github.com/Aleph-Alpha/docindex/internal/logger"
	"github.com/Aleph-Alpha/docindex/internal/metrics"
	"github.com/Aleph-Alpha/docindex/internal/repository"
	"github.com/Aleph-Alpha/docindex/internal/searchindex"
	"github.com/Aleph-Alpha/docindex/internal/storage"
	"github.com/Aleph-Alpha/docindex/internal/structured"
	"github.com/Aleph-Alpha/docindex/internal/tracer"
)

func newOrchestrator(
	cfg *Config,
	store storage.Store,
	documents repository.Documents,
	indexer searchindex.Indexer,
	texts extractor.Extractor,
	invoices structured.InvoiceExtractor,
	recorder metrics.Recorder,
	trc *tracer.Tracer,
	log *logger.Logger,
) Orchestrator {
	return NewService(cfg, store, documents, indexer, texts, invoices, recorder, trc, log)
}

var FXModule = fx.Module("ingestion",
	fx.Provide(
		newOrchestrator,
	),
)
