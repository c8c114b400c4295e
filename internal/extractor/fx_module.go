package extractor

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/docindex/internal/logger"
)

func newExtractor(log *logger.Logger) Extractor {
	return NewTextExtractor(log)
}

var FXModule = fx.Module("extractor",
	fx.Provide(
		newExtractor,
	),
)
