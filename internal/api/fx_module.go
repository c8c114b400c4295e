package api

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/docindex/internal/ingestion"
	"github.com/Aleph-Alpha/docindex/internal/logger"
	"github.com/Aleph-Alpha/docindex/internal/metrics"
	"github.com/Aleph-Alpha/docindex/internal/tracer"
)

func newServer(cfg *Config, pipeline ingestion.Orchestrator, recorder metrics.Recorder, trc *tracer.Tracer, log *logger.Logger) *Server {
	return NewServer(cfg, pipeline, recorder, trc, log)
}

var FXModule = fx.Module("api",
	fx.Provide(
		newServer,
	),
	fx.Invoke(RegisterServerLifecycle),
)

// RegisterServerLifecycle starts the API server on application start and
// shuts it down gracefully on stop.
func RegisterServerLifecycle(lc fx.Lifecycle, s *Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting API server", nil, map[string]interface{}{
					"address": s.httpServer.Addr,
				})

				if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Error starting API server", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down API server", nil, nil)
			return s.httpServer.Shutdown(ctx)
		},
	})
}
