package structured

import "time"

// Config holds connection settings for the chat-completion service used to
// pull structured fields out of free-form document text.
type Config struct {
	// Endpoint is the base URL of an OpenAI-compatible API, without the
	// /chat/completions suffix.
	Endpoint string `yaml:"endpoint" envconfig:"STRUCTURED_ENDPOINT"`
	ApiKey   string `yaml:"api_key" envconfig:"STRUCTURED_API_KEY"`
	Model    string `yaml:"model" envconfig:"STRUCTURED_MODEL"`
	// MaxTextLength caps the document text sent with each request. Longer
	// texts are truncated, not rejected.
	MaxTextLength int           `yaml:"max_text_length" envconfig:"STRUCTURED_MAX_TEXT_LENGTH"`
	Timeout       time.Duration `yaml:"timeout" envconfig:"STRUCTURED_TIMEOUT"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:         "gpt-4o-mini",
		MaxTextLength: 15000,
		Timeout:       30 * time.Second,
	}
}

func (c *Config) withDefaults() *Config {
	def := DefaultConfig()
	if c.Model == "" {
		c.Model = def.Model
	}
	if c.MaxTextLength <= 0 {
		c.MaxTextLength = def.MaxTextLength
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	return c
}
