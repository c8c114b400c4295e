package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/docindex/internal/logger"
)

func newTracer(cfg Config, log *logger.Logger) *Tracer {
	return NewClient(cfg, log)
}

var FXModule = fx.Module("tracer",
	fx.Provide(
		newTracer,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle flushes and shuts down the tracer provider when the
// application stops, so batched spans are not lost.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			t.logger.Info("Shutting down tracer", nil, nil)
			if t.provider == nil {
				t.logger.Warn("Tracer provider was nil during shutdown", nil, nil)
				return nil
			}
			return t.provider.Shutdown(ctx)
		},
	})
}
