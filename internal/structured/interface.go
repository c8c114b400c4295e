package structured

import (
	"context"

	"github.com/Aleph-Alpha/docindex/internal/document"
)

// InvoiceExtractor derives invoice fields from free-form document text.
//
// Absence is the expected outcome for non-invoice documents: a nil result
// with a nil error means the model found nothing usable, and callers should
// treat that as "no data", never as zero amounts.
type InvoiceExtractor interface {
	ExtractInvoice(ctx context.Context, text string) (*document.InvoiceFields, error)
}

type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}
