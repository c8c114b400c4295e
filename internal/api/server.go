package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Aleph-Alpha/docindex/internal/ingestion"
	"github.com/Aleph-Alpha/docindex/internal/metrics"
	"github.com/Aleph-Alpha/docindex/internal/tracer"
)

type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Server exposes the ingestion pipeline over HTTP.
type Server struct {
	cfg      *Config
	pipeline ingestion.Orchestrator
	recorder metrics.Recorder
	tracer   *tracer.Tracer
	logger   Logger

	httpServer *http.Server
}

func NewServer(cfg *Config, pipeline ingestion.Orchestrator, recorder metrics.Recorder, trc *tracer.Tracer, logger Logger) *Server {
	s := &Server{
		cfg:      cfg.withDefaults(),
		pipeline: pipeline,
		recorder: recorder,
		tracer:   trc,
		logger:   logger,
	}

	s.httpServer = &http.Server{
		Addr:         s.cfg.Address,
		Handler:      s.router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
	return s
}

func (s *Server) router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.traceContext)
	r.Use(s.requestDuration)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"service":"docindex"}`))
	})

	r.Route("/api/documents", func(r chi.Router) {
		r.Post("/", s.handleUpload)
		r.Post("/metadata", s.handleRegisterMetadata)
		r.Get("/search", s.handleSearch)
		r.Get("/{id}", s.handleGetDocument)
		r.Post("/{id}/invoice", s.handleExtractInvoice)
	})

	return r
}

// traceContext continues the caller's trace when the request carries W3C
// trace headers.
func (s *Server) traceContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers := make(map[string]string, len(r.Header))
		for key, values := range r.Header {
			if len(values) > 0 {
				headers[key] = values[0]
			}
		}
		ctx := s.tracer.SetCarrierOnContext(r.Context(), headers)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) requestDuration(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.recorder.RecordRequestDuration(start, r.Method+" "+r.URL.Path)
	})
}
