package ingestion

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/docindex/internal/document"
	"github.com/Aleph-Alpha/docindex/internal/extractor"
	"github.com/Aleph-Alpha/docindex/internal/repository"
	"github.com/Aleph-Alpha/docindex/internal/tracer"
)

type nopLogger struct{}

func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
func (nopLogger) Fatal(string, error, ...map[string]interface{}) {}

type fakeStore struct {
	mu        sync.Mutex
	writes    []string
	deletes   []string
	writeErr  error
	deleteErr error
}

func (f *fakeStore) Write(_ context.Context, name string, r io.Reader) (string, error) {
	if f.writeErr != nil {
		return "", f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, name)
	return "/data/" + name, nil
}

func (f *fakeStore) Delete(_ context.Context, location string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, location)
	return f.deleteErr
}

func (f *fakeStore) Exists(context.Context, string) (bool, error) { return true, nil }

type fakeDocuments struct {
	mu        sync.Mutex
	created   []*document.Metadata
	createErr error
	byID      map[uuid.UUID]*document.Metadata
}

func (f *fakeDocuments) Create(_ context.Context, meta *document.Metadata) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, meta)
	f.byID[meta.ID] = meta
	return nil
}

func (f *fakeDocuments) GetByID(_ context.Context, id uuid.UUID) (*document.Metadata, error) {
	if meta, ok := f.byID[id]; ok {
		return meta, nil
	}
	return nil, repository.ErrNotFound
}

type fakeIndexer struct {
	mu        sync.Mutex
	indexed   []document.SearchDocument
	indexOK   bool
	searched  []string
	limits    []int
	results   []document.SearchDocument
	searchErr error
}

func (f *fakeIndexer) Index(_ context.Context, doc document.SearchDocument) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.indexed = append(f.indexed, doc)
	return f.indexOK
}

func (f *fakeIndexer) Search(_ context.Context, term string, limit int) ([]document.SearchDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searched = append(f.searched, term)
	f.limits = append(f.limits, limit)
	return f.results, f.searchErr
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(context.Context, string) (string, error) { return f.text, f.err }

type fakeInvoices struct {
	fields *document.InvoiceFields
	err    error
	calls  int
	text   string
}

func (f *fakeInvoices) ExtractInvoice(_ context.Context, text string) (*document.InvoiceFields, error) {
	f.calls++
	f.text = text
	return f.fields, f.err
}

type fakeRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{counts: map[string]int{}}
}

func (f *fakeRecorder) inc(name, outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[name+"/"+outcome]++
}

func (f *fakeRecorder) count(name, outcome string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[name+"/"+outcome]
}

func (f *fakeRecorder) IncrementIngested(outcome string)        { f.inc("ingested", outcome) }
func (f *fakeRecorder) IncrementExtractions(outcome string)     { f.inc("extractions", outcome) }
func (f *fakeRecorder) IncrementIndexOps(outcome string)        { f.inc("index", outcome) }
func (f *fakeRecorder) IncrementSearches(outcome string)        { f.inc("searches", outcome) }
func (f *fakeRecorder) RecordRequestDuration(time.Time, string) {}

type deps struct {
	store     *fakeStore
	documents *fakeDocuments
	indexer   *fakeIndexer
	texts     *fakeExtractor
	invoices  *fakeInvoices
	recorder  *fakeRecorder
}

func newTestService(t *testing.T, cfg *Config, d *deps) *Service {
	t.Helper()

	if cfg == nil {
		cfg = &Config{}
	}
	trc := tracer.NewClient(tracer.Config{ServiceName: "test"}, nopLogger{})

	return NewService(
		cfg,
		d.store,
		d.documents,
		d.indexer,
		d.texts,
		d.invoices,
		d.recorder,
		trc,
		nopLogger{},
	)
}

func defaultDeps() *deps {
	return &deps{
		store:     &fakeStore{},
		documents: &fakeDocuments{byID: map[uuid.UUID]*document.Metadata{}},
		indexer:   &fakeIndexer{indexOK: true},
		texts:     &fakeExtractor{text: "invoice total 42"},
		invoices:  &fakeInvoices{},
		recorder:  newFakeRecorder(),
	}
}

func TestIngestSuccess(t *testing.T) {
	d := defaultDeps()
	s := newTestService(t, nil, d)

	before := time.Now().UTC()
	meta, err := s.Ingest(t.Context(), "Quarterly Invoice.pdf", []byte("%PDF-1.7 content"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, meta.ID)
	assert.Equal(t, "Quarterly Invoice.pdf", meta.OriginalFileName)
	assert.Equal(t, document.StatusReceived, meta.Status)
	assert.Nil(t, meta.DetectedDocumentType)
	assert.False(t, meta.UploadedAt.Before(before))
	require.NotNil(t, meta.FilePath)
	assert.Equal(t, "/data/"+meta.ID.String()+".pdf", *meta.FilePath)

	require.Len(t, d.store.writes, 1)
	assert.Equal(t, meta.ID.String()+".pdf", d.store.writes[0])
	require.Len(t, d.documents.created, 1)

	require.Len(t, d.indexer.indexed, 1)
	assert.Equal(t, meta.ID, d.indexer.indexed[0].ID)
	assert.Equal(t, "invoice total 42", d.indexer.indexed[0].ExtractedText)

	assert.Equal(t, 1, d.recorder.count("ingested", "success"))
	assert.Equal(t, 1, d.recorder.count("index", "success"))
}

func TestIngestValidation(t *testing.T) {
	cases := []struct {
		name     string
		fileName string
		content  []byte
		want     error
	}{
		{"empty content", "scan.pdf", nil, ErrEmptyFile},
		{"no extension", "README", []byte("x"), ErrNoExtension},
		{"trailing dot", "archive.", []byte("x"), ErrNoExtension},
		{"wrong extension", "invoice.exe", []byte("x"), ErrUnsupportedType},
		{"oversize", "big.pdf", make([]byte, 32), ErrFileTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := defaultDeps()
			s := newTestService(t, &Config{MaxUploadSize: 16}, d)

			_, err := s.Ingest(t.Context(), tc.fileName, tc.content)

			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, d.store.writes)
			assert.Empty(t, d.documents.created)
			assert.Empty(t, d.indexer.indexed)
		})
	}
}

func TestIngestUpperCaseExtensionAccepted(t *testing.T) {
	d := defaultDeps()
	s := newTestService(t, nil, d)

	_, err := s.Ingest(t.Context(), "SCAN.PDF", []byte("content"))
	require.NoError(t, err)
}

func TestIngestStorageFailureCreatesNothing(t *testing.T) {
	d := defaultDeps()
	storeErr := errors.New("disk full")
	d.store.writeErr = storeErr
	s := newTestService(t, nil, d)

	_, err := s.Ingest(t.Context(), "scan.pdf", []byte("content"))

	assert.ErrorIs(t, err, storeErr)
	assert.Empty(t, d.documents.created)
	assert.Empty(t, d.store.deletes)
	assert.Empty(t, d.indexer.indexed)
}

func TestIngestExtractionFailureStillPersists(t *testing.T) {
	d := defaultDeps()
	d.texts.err = extractor.ErrExtractionFailed
	s := newTestService(t, nil, d)

	meta, err := s.Ingest(t.Context(), "scan.pdf", []byte("content"))
	require.NoError(t, err)

	require.Len(t, d.documents.created, 1)
	assert.NotNil(t, meta.FilePath)
	assert.Empty(t, d.indexer.indexed)
	assert.Equal(t, 1, d.recorder.count("extractions", "failure"))
	assert.Equal(t, 1, d.recorder.count("index", "skipped"))
	assert.Equal(t, 1, d.recorder.count("ingested", "success"))
}

func TestIngestPersistenceFailureCompensates(t *testing.T) {
	d := defaultDeps()
	createErr := errors.New("connection refused")
	d.documents.createErr = createErr
	s := newTestService(t, nil, d)

	_, err := s.Ingest(t.Context(), "scan.pdf", []byte("content"))

	assert.ErrorIs(t, err, createErr)
	require.Len(t, d.store.writes, 1)
	require.Len(t, d.store.deletes, 1)
	assert.Equal(t, "/data/"+d.store.writes[0], d.store.deletes[0])
	assert.Empty(t, d.indexer.indexed)
}

func TestIngestCompensationFailureDoesNotMaskError(t *testing.T) {
	d := defaultDeps()
	createErr := errors.New("connection refused")
	d.documents.createErr = createErr
	d.store.deleteErr = errors.New("delete failed too")
	s := newTestService(t, nil, d)

	_, err := s.Ingest(t.Context(), "scan.pdf", []byte("content"))

	assert.ErrorIs(t, err, createErr)
	assert.NotContains(t, err.Error(), "delete failed too")
}

func TestIngestIndexFailureDoesNotFailRequest(t *testing.T) {
	d := defaultDeps()
	d.indexer.indexOK = false
	s := newTestService(t, nil, d)

	meta, err := s.Ingest(t.Context(), "scan.pdf", []byte("content"))
	require.NoError(t, err)
	require.NotNil(t, meta)

	assert.Equal(t, 1, d.recorder.count("index", "failure"))
	assert.Equal(t, 1, d.recorder.count("ingested", "success"))

	fetched, err := s.GetDocument(t.Context(), meta.ID)
	require.NoError(t, err)
	assert.Equal(t, meta.ID, fetched.ID)
	assert.Equal(t, meta.OriginalFileName, fetched.OriginalFileName)
	assert.Equal(t, meta.UploadedAt, fetched.UploadedAt)
	assert.Equal(t, meta.FilePath, fetched.FilePath)
}

func TestIngestSanitizesFileName(t *testing.T) {
	d := defaultDeps()
	s := newTestService(t, nil, d)

	meta, err := s.Ingest(t.Context(), `inv\2024:q1?.pdf`, []byte("content"))
	require.NoError(t, err)

	assert.Equal(t, "inv_2024_q1_.pdf", meta.OriginalFileName)
}

func TestIngestConcurrentUploadsGetDistinctNames(t *testing.T) {
	d := defaultDeps()
	s := newTestService(t, nil, d)

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			_, err := s.Ingest(t.Context(), "scan.pdf", []byte("content"))
			return err
		})
	}
	require.NoError(t, g.Wait())

	require.Len(t, d.store.writes, 16)
	seen := map[string]bool{}
	for _, name := range d.store.writes {
		assert.False(t, seen[name], "stored name %s reused", name)
		seen[name] = true
	}
}

func TestRegisterMetadataOnly(t *testing.T) {
	d := defaultDeps()
	s := newTestService(t, nil, d)

	meta, err := s.RegisterMetadataOnly(t.Context(), "paper-copy.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, meta.ID)
	assert.Nil(t, meta.FilePath)
	assert.Equal(t, document.StatusReceived, meta.Status)
	require.Len(t, d.documents.created, 1)
	assert.Empty(t, d.store.writes)
	assert.Empty(t, d.indexer.indexed)
}

func TestRegisterMetadataOnlyValidation(t *testing.T) {
	d := defaultDeps()
	s := newTestService(t, nil, d)

	_, err := s.RegisterMetadataOnly(t.Context(), "   ")
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.True(t, IsValidation(err))

	_, err = s.RegisterMetadataOnly(t.Context(), strings.Repeat("a", document.MaxFileNameLength+1))
	assert.ErrorIs(t, err, ErrNameTooLong)

	assert.Empty(t, d.documents.created)
}

func TestSearchEmptyTermSkipsIndex(t *testing.T) {
	d := defaultDeps()
	s := newTestService(t, nil, d)

	_, err := s.Search(t.Context(), "  \t ")

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.ErrorIs(t, err, ErrEmptySearchTerm)
	assert.Empty(t, d.indexer.searched)
}

func TestSearchCapsResults(t *testing.T) {
	d := defaultDeps()
	d.indexer.results = []document.SearchDocument{{OriginalFileName: "a.pdf"}}
	s := newTestService(t, nil, d)

	results, err := s.Search(t.Context(), "invoice")
	require.NoError(t, err)

	assert.Len(t, results, 1)
	require.Len(t, d.indexer.limits, 1)
	assert.Equal(t, MaxSearchResults, d.indexer.limits[0])
}

func TestExtractInvoiceUnknownID(t *testing.T) {
	d := defaultDeps()
	s := newTestService(t, nil, d)

	_, err := s.ExtractInvoice(t.Context(), uuid.New())
	assert.True(t, repository.IsNotFound(err))
}

func TestExtractInvoiceNoStoredContent(t *testing.T) {
	d := defaultDeps()
	id := uuid.New()
	d.documents.byID[id] = &document.Metadata{ID: id}
	s := newTestService(t, nil, d)

	_, err := s.ExtractInvoice(t.Context(), id)
	assert.ErrorIs(t, err, ErrNoStoredContent)
	assert.Zero(t, d.invoices.calls)
}

func TestExtractInvoiceVanishedFile(t *testing.T) {
	d := defaultDeps()
	id := uuid.New()
	path := "/data/" + id.String() + ".pdf"
	d.documents.byID[id] = &document.Metadata{ID: id, FilePath: &path}
	d.texts.err = extractor.ErrFileNotFound
	s := newTestService(t, nil, d)

	_, err := s.ExtractInvoice(t.Context(), id)
	assert.ErrorIs(t, err, ErrNoStoredContent)
}

func TestExtractInvoiceAbsence(t *testing.T) {
	id := uuid.New()
	path := "/data/" + id.String() + ".pdf"

	cases := []struct {
		name  string
		setup func(*deps)
	}{
		{"extraction failed", func(d *deps) { d.texts.err = extractor.ErrExtractionFailed }},
		{"blank text", func(d *deps) { d.texts.text = "  \n " }},
		{"extraction service down", func(d *deps) { d.invoices.err = errors.New("service unavailable") }},
		{"no fields found", func(d *deps) { d.invoices.fields = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := defaultDeps()
			d.documents.byID[id] = &document.Metadata{ID: id, FilePath: &path}
			tc.setup(d)
			s := newTestService(t, nil, d)

			fields, err := s.ExtractInvoice(t.Context(), id)
			require.NoError(t, err)
			assert.Nil(t, fields)
		})
	}
}

func TestExtractInvoiceSuccess(t *testing.T) {
	d := defaultDeps()
	id := uuid.New()
	path := "/data/" + id.String() + ".pdf"
	d.documents.byID[id] = &document.Metadata{ID: id, FilePath: &path}
	number := "INV-7"
	d.invoices.fields = &document.InvoiceFields{InvoiceNumber: &number}
	s := newTestService(t, nil, d)

	fields, err := s.ExtractInvoice(t.Context(), id)
	require.NoError(t, err)
	require.NotNil(t, fields)
	assert.Equal(t, "INV-7", *fields.InvoiceNumber)
	assert.Equal(t, "invoice total 42", d.invoices.text)
}
