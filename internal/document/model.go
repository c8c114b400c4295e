package document

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProcessingStatus describes where a document sits in its processing lifecycle.
type ProcessingStatus string

const (
	// StatusReceived means the document was accepted and its metadata persisted.
	StatusReceived ProcessingStatus = "received"

	// StatusProcessing means downstream enrichment is in progress.
	StatusProcessing ProcessingStatus = "processing"

	// StatusProcessed means downstream enrichment completed successfully.
	StatusProcessed ProcessingStatus = "processed"

	// StatusFailed means downstream enrichment failed terminally.
	StatusFailed ProcessingStatus = "failed"
)

// Metadata is the authoritative record for an ingested document.
// It is created exactly once per accepted upload and never physically deleted
// by the ingestion pipeline. The ingestion pipeline sets Status at creation and
// does not drive it further; DetectedDocumentType is reserved for downstream
// classifiers.
type Metadata struct {
	// ID is the globally unique document identifier, assigned at creation.
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	// OriginalFileName is the sanitized display name of the uploaded file.
	OriginalFileName string `gorm:"size:255;not null" json:"originalFileName"`

	// DetectedDocumentType is an optional classifier result. Not set by the
	// ingestion pipeline.
	DetectedDocumentType *string `json:"detectedDocumentType,omitempty"`

	// UploadedAt is the creation timestamp in UTC, set once.
	UploadedAt time.Time `gorm:"not null" json:"uploadedAt"`

	// FilePath is the location of the stored file in content storage.
	// Nil when the record was registered without an accompanying upload.
	FilePath *string `json:"filePath,omitempty"`

	// Status is the processing lifecycle state.
	Status ProcessingStatus `gorm:"size:32;not null" json:"status"`
}

// TableName fixes the table name instead of relying on gorm pluralization.
func (Metadata) TableName() string {
	return "document_metadata"
}

// SearchDocument is the derived, non-authoritative representation written to
// the search index. Its id matches the Metadata id; its absence from the index
// is not an error state for the authoritative record.
type SearchDocument struct {
	ID               uuid.UUID `json:"id"`
	OriginalFileName string    `json:"originalFileName"`
	ExtractedText    string    `json:"extractedText"`
	UploadedAt       time.Time `json:"uploadedAt"`
}

// MaxFileNameLength is the upper bound on a sanitized display name.
const MaxFileNameLength = 250

// invalidFileNameChars are characters replaced during sanitizing. The set
// covers path separators plus the characters Windows forbids in file names.
const invalidFileNameChars = `/\:*?"<>|`

// SanitizeFileName replaces characters that are invalid in file names with
// underscores and truncates the result to MaxFileNameLength, preserving the
// extension when truncating.
func SanitizeFileName(fileName string) string {
	sanitized := strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(invalidFileNameChars, r) {
			return '_'
		}
		return r
	}, fileName)

	if len(sanitized) <= MaxFileNameLength {
		return sanitized
	}

	ext := Extension(sanitized)
	return sanitized[:MaxFileNameLength-len(ext)] + ext
}

// Extension returns the file extension including the leading dot, or the empty
// string when the name has none. A trailing dot counts as no extension.
func Extension(fileName string) string {
	idx := strings.LastIndex(fileName, ".")
	if idx < 0 || idx == len(fileName)-1 {
		return ""
	}
	return fileName[idx:]
}
