package repository

// Config defines the connection settings for the metadata database.
type Config struct {
	// Connection holds the PostgreSQL connection parameters.
	Connection Connection
}

// Connection contains PostgreSQL connection parameters.
type Connection struct {
	// Host is the database server hostname or IP address.
	// Default: "localhost"
	Host string

	// Port is the database server port.
	// Default: "5432"
	Port string

	// User is the database user.
	User string

	// Password is the database user's password.
	Password string

	// DbName is the database name.
	DbName string

	// SSLMode is the PostgreSQL sslmode setting ("disable", "require", ...).
	// Default: "disable"
	SSLMode string
}

// Default values for configuration
const (
	DefaultHost    = "localhost"
	DefaultPort    = "5432"
	DefaultSSLMode = "disable"
)

// withDefaults fills unset connection fields with the package defaults.
func (c Config) withDefaults() Config {
	if c.Connection.Host == "" {
		c.Connection.Host = DefaultHost
	}
	if c.Connection.Port == "" {
		c.Connection.Port = DefaultPort
	}
	if c.Connection.SSLMode == "" {
		c.Connection.SSLMode = DefaultSSLMode
	}
	return c
}
