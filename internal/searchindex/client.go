package searchindex

import (
	"context"
	"fmt"
	"time"

	qdrant "github.com/qdrant/go-client/qdrant"
)

// SearchIndex wraps the Qdrant Go client with the two operations this service
// needs: idempotent document upserts and full-text queries over extracted text.
type SearchIndex struct {
	api    *qdrant.Client
	cfg    Config
	logger Logger
}

// NewSearchIndex constructs a new SearchIndex and validates connectivity via a
// health check, failing fast if the service is unreachable.
func NewSearchIndex(cfg Config, logger Logger) (*SearchIndex, error) {
	port := cfg.Port
	if port == 0 {
		port = 6334
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultConfig().Collection
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:                   cfg.Endpoint,
		Port:                   port,
		APIKey:                 cfg.ApiKey,
		SkipCompatibilityCheck: !cfg.CheckCompatibility,
	})
	if err != nil {
		return nil, fmt.Errorf("searchindex: failed to initialize client: %w", err)
	}

	s := &SearchIndex{
		api:    client,
		cfg:    cfg,
		logger: logger,
	}

	if err := s.healthCheck(); err != nil {
		return nil, fmt.Errorf("searchindex: health check failed: %w", err)
	}

	return s, nil
}

// healthCheck verifies the availability of the index service.
func (s *SearchIndex) healthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	resp, err := s.api.HealthCheck(ctx)
	if err != nil {
		return err
	}

	s.logger.Info("Search index health check passed", nil, map[string]interface{}{
		"title":    resp.Title,
		"version":  resp.Version,
		"endpoint": s.cfg.Endpoint,
	})

	return nil
}
