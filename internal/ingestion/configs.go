package ingestion

import "time"

// DefaultMaxUploadSize caps uploads at 10 MiB when nothing is configured.
const DefaultMaxUploadSize = 10 << 20

// AcceptedExtension is the single file extension the pipeline ingests,
// matched case-insensitively.
const AcceptedExtension = ".pdf"

// MaxSearchResults caps the number of hits a search returns.
const MaxSearchResults = 20

// Config holds the orchestrator's tunables.
type Config struct {
	// MaxUploadSize is the largest accepted upload in bytes.
	MaxUploadSize int64 `yaml:"max_upload_size" envconfig:"MAX_UPLOAD_SIZE"`

	// ExtractTimeout bounds a single text extraction, so a pathological
	// file cannot hold the request open indefinitely.
	ExtractTimeout time.Duration `yaml:"extract_timeout" envconfig:"EXTRACT_TIMEOUT"`
}

func (c *Config) withDefaults() *Config {
	if c.MaxUploadSize <= 0 {
		c.MaxUploadSize = DefaultMaxUploadSize
	}
	if c.ExtractTimeout <= 0 {
		c.ExtractTimeout = 60 * time.Second
	}
	return c
}
