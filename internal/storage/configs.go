package storage

// Backend selects the content storage implementation.
const (
	// BackendFilesystem stores uploads as a flat directory of files.
	BackendFilesystem = "filesystem"

	// BackendS3 stores uploads in an S3-compatible object store via MinIO.
	BackendS3 = "s3"
)

// Config contains configuration for content store creation.
type Config struct {
	// Type is the storage backend ("filesystem" or "s3").
	// Default: "filesystem"
	Type string

	// BasePath is the directory uploads are written to (filesystem backend).
	// Absence of this setting is a fatal configuration error for the upload path.
	BasePath string

	// S3 configuration (used when Type = "s3")
	S3 S3Config
}

// S3Config contains connection settings for the S3-compatible backend.
type S3Config struct {
	// Endpoint is the host:port of the object storage service.
	Endpoint string

	// AccessKeyID and SecretAccessKey are the static credentials.
	AccessKeyID     string
	SecretAccessKey string

	// BucketName is the bucket uploads are written to. Created on startup
	// when absent.
	BucketName string

	// Region for bucket creation. Optional.
	Region string

	// UseSSL determines whether to connect over TLS.
	UseSSL bool
}

// NewStore creates the content store selected by cfg.Type.
// Unknown types fall back to the filesystem backend.
func NewStore(cfg Config, logger Logger) (Store, error) {
	switch cfg.Type {
	case BackendS3:
		return NewObjectStore(cfg.S3, logger)
	default:
		return NewFileStore(cfg, logger)
	}
}
