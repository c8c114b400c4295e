package ingestion

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Aleph-Alpha/docindex/internal/document"
	"github.com/Aleph-Alpha/docindex/internal/extractor"
	"github.com/Aleph-Alpha/docindex/internal/metrics"
	"github.com/Aleph-Alpha/docindex/internal/repository"
	"github.com/Aleph-Alpha/docindex/internal/searchindex"
	"github.com/Aleph-Alpha/docindex/internal/storage"
	"github.com/Aleph-Alpha/docindex/internal/structured"
	"github.com/Aleph-Alpha/docindex/internal/tracer"
)

// Service implements Orchestrator on top of the storage, repository, index,
// and extraction components.
type Service struct {
	cfg       *Config
	store     storage.Store
	documents repository.Documents
	indexer   searchindex.Indexer
	texts     extractor.Extractor
	invoices  structured.InvoiceExtractor
	recorder  metrics.Recorder
	tracer    *tracer.Tracer
	logger    Logger
}

func NewService(
	cfg *Config,
	store storage.Store,
	documents repository.Documents,
	indexer searchindex.Indexer,
	texts extractor.Extractor,
	invoices structured.InvoiceExtractor,
	recorder metrics.Recorder,
	trc *tracer.Tracer,
	logger Logger,
) *Service {
	return &Service{
		cfg:       cfg.withDefaults(),
		store:     store,
		documents: documents,
		indexer:   indexer,
		texts:     texts,
		invoices:  invoices,
		recorder:  recorder,
		tracer:    trc,
		logger:    logger,
	}
}

// Ingest runs the pipeline for one uploaded file.
//
// Validation failures cause no side effects. A storage failure aborts before
// any record exists. Extraction runs best-effort against the stored file.
// Persisting the metadata record is the one mandatory write; if it fails the
// stored file is deleted again before the error is returned. Indexing runs
// best-effort after a successful persist and only when extraction produced
// text.
func (s *Service) Ingest(ctx context.Context, fileName string, content []byte) (*document.Metadata, error) {
	ctx, span := s.tracer.StartSpan(ctx, "ingest-document")
	defer span.End()

	if err := s.validateUpload(fileName, content); err != nil {
		s.recorder.IncrementIngested(metrics.OutcomeFailure)
		return nil, err
	}

	id := uuid.New()
	storedName := id.String() + AcceptedExtension

	s.tracer.SetAttributes(span, map[string]interface{}{
		"document.id":        id.String(),
		"document.file_name": fileName,
		"document.size":      int64(len(content)),
	})

	location, err := s.store.Write(ctx, storedName, bytes.NewReader(content))
	if err != nil {
		s.tracer.RecordErrorOnSpan(span, err)
		s.recorder.IncrementIngested(metrics.OutcomeFailure)
		s.logger.Error("Storing uploaded file failed", err, map[string]interface{}{
			"document_id": id.String(),
			"file_name":   fileName,
		})
		return nil, err
	}

	text := s.extractText(ctx, id, location)

	meta := &document.Metadata{
		ID:               id,
		OriginalFileName: document.SanitizeFileName(fileName),
		UploadedAt:       time.Now().UTC(),
		FilePath:         &location,
		Status:           document.StatusReceived,
	}

	if err := s.documents.Create(ctx, meta); err != nil {
		s.tracer.RecordErrorOnSpan(span, err)
		s.recorder.IncrementIngested(metrics.OutcomeFailure)
		s.logger.Error("Persisting document metadata failed", err, map[string]interface{}{
			"document_id": id.String(),
		})
		s.compensateStoredFile(ctx, id, location)
		return nil, err
	}

	if text != "" {
		s.indexDocument(ctx, meta, text)
	} else {
		s.recorder.IncrementIndexOps(metrics.OutcomeSkipped)
	}

	s.recorder.IncrementIngested(metrics.OutcomeSuccess)
	s.logger.Info("Document ingested", nil, map[string]interface{}{
		"document_id": id.String(),
		"file_name":   meta.OriginalFileName,
		"has_text":    text != "",
	})
	return meta, nil
}

// RegisterMetadataOnly creates a record for a document that has no binary
// upload. The file path stays nil, so nothing needs compensation on failure.
func (s *Service) RegisterMetadataOnly(ctx context.Context, fileName string) (*document.Metadata, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, validationError(ErrNameRequired)
	}
	if len(fileName) > document.MaxFileNameLength {
		return nil, validationError(ErrNameTooLong)
	}

	meta := &document.Metadata{
		ID:               uuid.New(),
		OriginalFileName: document.SanitizeFileName(fileName),
		UploadedAt:       time.Now().UTC(),
		Status:           document.StatusReceived,
	}

	if err := s.documents.Create(ctx, meta); err != nil {
		s.recorder.IncrementIngested(metrics.OutcomeFailure)
		s.logger.Error("Persisting metadata-only record failed", err, map[string]interface{}{
			"document_id": meta.ID.String(),
		})
		return nil, err
	}

	s.recorder.IncrementIngested(metrics.OutcomeSuccess)
	return meta, nil
}

// GetDocument fetches a record by id.
func (s *Service) GetDocument(ctx context.Context, id uuid.UUID) (*document.Metadata, error) {
	return s.documents.GetByID(ctx, id)
}

// Search queries the index for matching documents, capped at
// MaxSearchResults hits. A blank term never reaches the index.
func (s *Service) Search(ctx context.Context, term string) ([]document.SearchDocument, error) {
	if strings.TrimSpace(term) == "" {
		s.recorder.IncrementSearches(metrics.OutcomeFailure)
		return nil, validationError(ErrEmptySearchTerm)
	}

	results, err := s.indexer.Search(ctx, term, MaxSearchResults)
	if err != nil {
		s.recorder.IncrementSearches(metrics.OutcomeFailure)
		return nil, err
	}

	s.recorder.IncrementSearches(metrics.OutcomeSuccess)
	return results, nil
}

// ExtractInvoice derives structured invoice fields from a stored document.
//
// An unknown id surfaces the repository's not-found error. A record without
// stored content, or whose file has since vanished, yields
// ErrNoStoredContent. Unreadable text and an unavailable extraction service
// both degrade to absence, matching the pipeline's treatment of enrichment
// as advisory.
func (s *Service) ExtractInvoice(ctx context.Context, id uuid.UUID) (*document.InvoiceFields, error) {
	ctx, span := s.tracer.StartSpan(ctx, "extract-invoice")
	defer span.End()

	meta, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if meta.FilePath == nil {
		return nil, ErrNoStoredContent
	}

	extractCtx, cancel := context.WithTimeout(ctx, s.cfg.ExtractTimeout)
	defer cancel()

	text, err := s.texts.Extract(extractCtx, *meta.FilePath)
	if err != nil {
		if extractor.IsFileNotFound(err) {
			return nil, ErrNoStoredContent
		}
		s.logger.Warn("Text extraction for invoice fields failed", err, map[string]interface{}{
			"document_id": id.String(),
		})
		return nil, nil
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	fields, err := s.invoices.ExtractInvoice(ctx, text)
	if err != nil {
		s.tracer.RecordErrorOnSpan(span, err)
		s.logger.Warn("Structured extraction failed", err, map[string]interface{}{
			"document_id": id.String(),
		})
		return nil, nil
	}
	return fields, nil
}

func (s *Service) validateUpload(fileName string, content []byte) error {
	if len(content) == 0 {
		return validationError(ErrEmptyFile)
	}

	ext := document.Extension(fileName)
	if ext == "" {
		return validationError(ErrNoExtension)
	}
	if !strings.EqualFold(ext, AcceptedExtension) {
		return validationError(ErrUnsupportedType)
	}

	if int64(len(content)) > s.cfg.MaxUploadSize {
		return validationError(ErrFileTooLarge)
	}
	return nil
}

// extractText pulls the document's text, absorbing any failure into an empty
// result. A missing file and a failed parse are logged at different levels
// since the former points at a storage problem.
func (s *Service) extractText(ctx context.Context, id uuid.UUID, location string) string {
	extractCtx, cancel := context.WithTimeout(ctx, s.cfg.ExtractTimeout)
	defer cancel()

	text, err := s.texts.Extract(extractCtx, location)
	if err != nil {
		if extractor.IsFileNotFound(err) {
			s.logger.Error("Stored file vanished before extraction", err, map[string]interface{}{
				"document_id": id.String(),
				"location":    location,
			})
		} else {
			s.logger.Warn("Text extraction failed, continuing without text", err, map[string]interface{}{
				"document_id": id.String(),
			})
		}
		s.recorder.IncrementExtractions(metrics.OutcomeFailure)
		return ""
	}

	s.recorder.IncrementExtractions(metrics.OutcomeSuccess)
	return text
}

func (s *Service) indexDocument(ctx context.Context, meta *document.Metadata, text string) {
	ok := s.indexer.Index(ctx, document.SearchDocument{
		ID:               meta.ID,
		OriginalFileName: meta.OriginalFileName,
		ExtractedText:    text,
		UploadedAt:       meta.UploadedAt,
	})
	if ok {
		s.recorder.IncrementIndexOps(metrics.OutcomeSuccess)
	} else {
		s.recorder.IncrementIndexOps(metrics.OutcomeFailure)
	}
}

// compensateStoredFile removes the file written earlier in the same request.
// A failure here is logged and dropped; the caller still sees the original
// persistence error.
func (s *Service) compensateStoredFile(ctx context.Context, id uuid.UUID, location string) {
	if err := s.store.Delete(ctx, location); err != nil {
		s.logger.Error("Compensating file delete failed, stored file is now orphaned", err, map[string]interface{}{
			"document_id": id.String(),
			"location":    location,
		})
	}
}
