package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Aleph-Alpha/docindex/internal/api"
	"github.com/Aleph-Alpha/docindex/internal/ingestion"
	"github.com/Aleph-Alpha/docindex/internal/logger"
	"github.com/Aleph-Alpha/docindex/internal/metrics"
	"github.com/Aleph-Alpha/docindex/internal/repository"
	"github.com/Aleph-Alpha/docindex/internal/searchindex"
	"github.com/Aleph-Alpha/docindex/internal/storage"
	"github.com/Aleph-Alpha/docindex/internal/structured"
	"github.com/Aleph-Alpha/docindex/internal/tracer"
)

// AppConfig aggregates every component's configuration, filled from the
// process environment.
type AppConfig struct {
	Logger      logger.Config
	API         api.Config
	Storage     storage.Config
	Database    repository.Config
	SearchIndex searchindex.Config
	Structured  structured.Config
	Ingestion   ingestion.Config
	Metrics     metrics.Config
	Tracer      tracer.Config
}

// Load reads an optional .env file and builds the full application
// configuration from environment variables. Unset variables fall back to each
// component's defaults; component constructors stay responsible for rejecting
// settings they cannot run without.
func Load() *AppConfig {
	_ = godotenv.Load()

	serviceName := getEnv("SERVICE_NAME", "docindex")

	return &AppConfig{
		Logger: logger.Config{
			Level:         getEnv("ZAP_LOGGER_LEVEL", "info"),
			ServiceName:   serviceName,
			EnableTracing: getEnvBool("LOGGER_ENABLE_TRACING", false),
		},
		API: api.Config{
			Address:        getEnv("API_ADDRESS", ":8080"),
			MaxRequestSize: getEnvInt64("API_MAX_REQUEST_SIZE", 32<<20),
			ReadTimeout:    getEnvDuration("API_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getEnvDuration("API_WRITE_TIMEOUT", 120*time.Second),
		},
		Storage: storage.Config{
			Type:     getEnv("STORAGE_TYPE", storage.BackendFilesystem),
			BasePath: os.Getenv("STORAGE_BASE_PATH"),
			S3: storage.S3Config{
				Endpoint:        os.Getenv("S3_ENDPOINT"),
				AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
				SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
				BucketName:      getEnv("S3_BUCKET_NAME", "documents"),
				Region:          os.Getenv("S3_REGION"),
				UseSSL:          getEnvBool("S3_USE_SSL", false),
			},
		},
		Database: repository.Config{
			Connection: repository.Connection{
				Host:     getEnv("POSTGRES_HOST", repository.DefaultHost),
				Port:     getEnv("POSTGRES_PORT", repository.DefaultPort),
				User:     os.Getenv("POSTGRES_USER"),
				Password: os.Getenv("POSTGRES_PASSWORD"),
				DbName:   os.Getenv("POSTGRES_DB"),
				SSLMode:  getEnv("POSTGRES_SSLMODE", repository.DefaultSSLMode),
			},
		},
		SearchIndex: searchindex.Config{
			Endpoint:           getEnv("SEARCH_INDEX_ENDPOINT", "localhost"),
			Port:               getEnvInt("SEARCH_INDEX_PORT", 6334),
			ApiKey:             os.Getenv("SEARCH_INDEX_API_KEY"),
			Collection:         getEnv("SEARCH_INDEX_COLLECTION", "pdf-documents"),
			Timeout:            getEnvDuration("SEARCH_INDEX_TIMEOUT", 5*time.Second),
			CheckCompatibility: getEnvBool("SEARCH_INDEX_CHECK_COMPATIBILITY", false),
		},
		Structured: structured.Config{
			Endpoint:      os.Getenv("STRUCTURED_ENDPOINT"),
			ApiKey:        os.Getenv("STRUCTURED_API_KEY"),
			Model:         getEnv("STRUCTURED_MODEL", "gpt-4o-mini"),
			MaxTextLength: getEnvInt("STRUCTURED_MAX_TEXT_LENGTH", 15000),
			Timeout:       getEnvDuration("STRUCTURED_TIMEOUT", 30*time.Second),
		},
		Ingestion: ingestion.Config{
			MaxUploadSize:  getEnvInt64("MAX_UPLOAD_SIZE", ingestion.DefaultMaxUploadSize),
			ExtractTimeout: getEnvDuration("EXTRACT_TIMEOUT", 60*time.Second),
		},
		Metrics: metrics.Config{
			Address:                 getEnv("METRICS_ADDRESS", metrics.DefaultMetricsAddress),
			EnableDefaultCollectors: getEnvBool("METRICS_ENABLE_DEFAULT_COLLECTORS", true),
			ServiceName:             serviceName,
		},
		Tracer: tracer.Config{
			ServiceName:  serviceName,
			AppEnv:       getEnv("APP_ENV", "development"),
			EnableExport: getEnvBool("TRACING_ENABLE_EXPORT", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
