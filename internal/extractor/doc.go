// Package extractor pulls plain text out of stored PDF files.
//
// Extraction is a best-effort concern for callers: a document whose text
// cannot be decoded is still a valid document. The package therefore
// distinguishes a missing file (ErrFileNotFound) from a file that exists but
// cannot be parsed (ErrExtractionFailed), so callers can log the two cases
// differently without changing their control flow.
package extractor
