package searchindex

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	qdrant "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Aleph-Alpha/docindex/internal/document"
)

// Payload field names of a search document inside the collection.
const (
	fieldOriginalFileName = "originalFileName"
	fieldExtractedText    = "extractedText"
	fieldUploadedAt       = "uploadedAt"
)

// EnsureCollection verifies that the configured collection exists and creates
// it if missing, together with a full-text payload index on the extracted
// text field.
//
// It is safe to call multiple times; if the collection already exists the
// function exits early.
func (s *SearchIndex) EnsureCollection(ctx context.Context) error {
	name := s.cfg.Collection

	collections, err := s.api.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("searchindex: failed to list collections: %w", err)
	}

	if slices.Contains(collections, name) {
		return nil
	}

	s.logger.Info("Search collection not found, creating it", nil, map[string]interface{}{
		"collection": name,
	})

	// Payload-only collection: documents are matched through the full-text
	// index, no dense vectors are stored.
	if err := s.api.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: name,
	}); err != nil {
		return fmt.Errorf("searchindex: failed to create collection %q: %w", name, err)
	}

	if _, err := s.api.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
		CollectionName: name,
		FieldName:      fieldExtractedText,
		FieldType:      qdrant.FieldType_FieldTypeText.Enum(),
	}); err != nil {
		return fmt.Errorf("searchindex: failed to create text index on %q: %w", name, err)
	}

	s.logger.Info("Created search collection", nil, map[string]interface{}{
		"collection": name,
	})
	return nil
}

// Index upserts a search document keyed by its id, overwriting any previous
// version. It returns false on any failure; failures are logged with enough
// detail to diagnose (server error type and reason for application-level
// failures, the transport error otherwise) and are never surfaced to the
// document's primary caller as a hard ingestion failure.
func (s *SearchIndex) Index(ctx context.Context, doc document.SearchDocument) bool {
	if doc.ID == uuid.Nil {
		s.logger.Warn("Search document has an empty id, refusing to index", nil, nil)
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	wait := true
	_, err := s.api.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.cfg.Collection,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewID(doc.ID.String()),
				Payload: buildPayload(doc),
			},
		},
		Wait: &wait,
	})
	if err != nil {
		if st, ok := status.FromError(err); ok && !isTransportCode(st.Code()) {
			// The call reached the index service and it reported an
			// application-level error.
			s.logger.Error("Search index rejected document", err, map[string]interface{}{
				"document_id":  doc.ID.String(),
				"error_type":   st.Code().String(),
				"error_reason": st.Message(),
			})
		} else {
			s.logger.Error("Search index call failed at the transport level", err, map[string]interface{}{
				"document_id": doc.ID.String(),
			})
		}
		return false
	}

	return true
}

// Search returns documents whose extracted text matches the term, capped at
// limit results.
func (s *SearchIndex) Search(ctx context.Context, term string, limit int) ([]document.SearchDocument, error) {
	if term == "" {
		return nil, fmt.Errorf("searchindex: search term cannot be empty")
	}
	if limit <= 0 {
		limit = 20
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	limit64 := uint64(limit)
	points, err := s.api.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.cfg.Collection,
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatchText(fieldExtractedText, term),
			},
		},
		Limit:       &limit64,
		WithPayload: qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("searchindex: query failed: %w", err)
	}

	results := make([]document.SearchDocument, 0, len(points))
	for _, p := range points {
		doc, convErr := pointToSearchDocument(p)
		if convErr != nil {
			s.logger.Warn("Skipping malformed point in search response", convErr, map[string]interface{}{
				"collection": s.cfg.Collection,
			})
			continue
		}
		results = append(results, doc)
	}

	return results, nil
}

// isTransportCode reports whether a gRPC status code describes a failure to
// reach the service rather than a server-side rejection.
func isTransportCode(code codes.Code) bool {
	switch code {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return true
	default:
		return false
	}
}

// buildPayload converts a search document into a Qdrant payload map.
func buildPayload(doc document.SearchDocument) map[string]*qdrant.Value {
	return qdrant.NewValueMap(map[string]any{
		fieldOriginalFileName: doc.OriginalFileName,
		fieldExtractedText:    doc.ExtractedText,
		fieldUploadedAt:       doc.UploadedAt.UTC().Format(time.RFC3339Nano),
	})
}

// pointToSearchDocument converts a scored point back into a search document.
func pointToSearchDocument(p *qdrant.ScoredPoint) (document.SearchDocument, error) {
	var doc document.SearchDocument

	rawID := p.GetId().GetUuid()
	id, err := uuid.Parse(rawID)
	if err != nil {
		return doc, fmt.Errorf("searchindex: point id %q is not a uuid: %w", rawID, err)
	}

	payload := p.GetPayload()
	doc.ID = id
	doc.OriginalFileName = payload[fieldOriginalFileName].GetStringValue()
	doc.ExtractedText = payload[fieldExtractedText].GetStringValue()

	if raw := payload[fieldUploadedAt].GetStringValue(); raw != "" {
		uploadedAt, parseErr := time.Parse(time.RFC3339Nano, raw)
		if parseErr != nil {
			return doc, fmt.Errorf("searchindex: malformed uploadedAt %q: %w", raw, parseErr)
		}
		doc.UploadedAt = uploadedAt
	}

	return doc, nil
}
