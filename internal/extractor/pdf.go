package extractor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PageSeparator joins the text of consecutive pages. Page order is significant
// for downstream readability, not for search matching.
const PageSeparator = "\n"

// TextExtractor extracts plain text from PDF files on local storage.
// Input files are validated with pdfcpu before text is pulled page by page.
type TextExtractor struct {
	conf   *model.Configuration
	logger Logger
}

// NewTextExtractor creates a TextExtractor with relaxed PDF validation,
// matching what real-world scanned invoices tend to require.
func NewTextExtractor(logger Logger) *TextExtractor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &TextExtractor{
		conf:   conf,
		logger: logger,
	}
}

// Extract returns the document's text with pages in document order, joined by
// PageSeparator.
func (e *TextExtractor) Extract(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := os.Stat(location); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, location)
		}
		return "", fmt.Errorf("%w: stat %s: %v", ErrExtractionFailed, location, err)
	}

	if err := api.ValidateFile(location, e.conf); err != nil {
		return "", fmt.Errorf("%w: invalid pdf %s: %v", ErrExtractionFailed, location, err)
	}

	f, reader, err := pdf.Open(location)
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %v", ErrExtractionFailed, location, err)
	}
	defer f.Close()

	pageCount := reader.NumPage()
	e.logger.Debug("Extracting text from PDF", nil, map[string]interface{}{
		"location": location,
		"pages":    pageCount,
	})

	pages := make([]string, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d of %s: %v", ErrExtractionFailed, i, location, err)
		}
		pages = append(pages, text)
	}

	return joinPages(pages), nil
}

// joinPages concatenates page texts in order with the page-boundary separator.
func joinPages(pages []string) string {
	return strings.Join(pages, PageSeparator)
}
