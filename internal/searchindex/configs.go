package searchindex

import "time"

// Config holds connection and behavior settings for the search index client.
type Config struct {
	// Endpoint is the hostname of the Qdrant server, e.g. "localhost".
	Endpoint string `yaml:"endpoint" envconfig:"SEARCH_INDEX_ENDPOINT"`

	// Port is the gRPC port of the Qdrant server. Defaults to 6334.
	Port int `yaml:"port" envconfig:"SEARCH_INDEX_PORT"`

	// ApiKey is an optional authentication token for secured deployments.
	ApiKey string `yaml:"api_key" envconfig:"SEARCH_INDEX_API_KEY"`

	// Collection is the default collection search documents are written to.
	Collection string `yaml:"collection" envconfig:"SEARCH_INDEX_COLLECTION"`

	// Timeout bounds every index and search call.
	Timeout time.Duration `yaml:"timeout" envconfig:"SEARCH_INDEX_TIMEOUT"`

	// CheckCompatibility controls client/server version compatibility checks.
	CheckCompatibility bool `yaml:"check_compatibility" envconfig:"SEARCH_INDEX_CHECK_COMPATIBILITY"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "localhost",
		Port:       6334,
		Collection: "pdf-documents",
		Timeout:    5 * time.Second,
	}
}
