package structured

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/docindex/internal/logger"
)

func newInvoiceExtractor(cfg *Config, log *logger.Logger) InvoiceExtractor {
	return NewCompletionExtractor(cfg, log)
}

var FXModule = fx.Module("structured",
	fx.Provide(
		newInvoiceExtractor,
	),
)
