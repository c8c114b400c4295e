package api

import "time"

// Config holds the HTTP server settings.
type Config struct {
	// Address is the listen address of the API server, e.g. ":8080".
	Address string `yaml:"address" envconfig:"API_ADDRESS"`

	// MaxRequestSize caps the accepted request body in bytes. It sits
	// above the upload size limit so an oversized file still reaches the
	// pipeline's own validation instead of failing mid-parse.
	MaxRequestSize int64 `yaml:"max_request_size" envconfig:"API_MAX_REQUEST_SIZE"`

	ReadTimeout  time.Duration `yaml:"read_timeout" envconfig:"API_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"API_WRITE_TIMEOUT"`
}

func (c *Config) withDefaults() *Config {
	if c.Address == "" {
		c.Address = ":8080"
	}
	if c.MaxRequestSize <= 0 {
		c.MaxRequestSize = 32 << 20
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 30 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 120 * time.Second
	}
	return c
}
