// Package storage provides durable content storage for uploaded documents.
//
// Two backends implement the Store interface:
//
//   - FileStore writes uploads as a flat directory of {generatedId}.{ext}
//     files under a configured base path (the default). Writes go through a
//     temporary file and a rename, so a failed copy never leaves a partial
//     file under the final name.
//   - ObjectStore writes uploads to an S3-compatible object store via the
//     MinIO client, with the object key standing in for the file path.
//
// Errors are classified into two kinds that callers can test with IsIO and
// IsPermission; anything else is unexpected. The ingestion pipeline maps these
// kinds to different HTTP outcomes upstream.
package storage
