package repository

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Aleph-Alpha/docindex/internal/document"
)

// Postgres is a wrapper around gorm.DB holding the metadata database
// connection. It owns connection pool configuration and graceful shutdown.
type Postgres struct {
	Client *gorm.DB
	cfg    Config
	logger Logger
}

// NewPostgres creates a new Postgres instance with the provided configuration
// and logger. It establishes the initial database connection and migrates the
// document metadata table. If the connection fails, it logs a fatal error and
// terminates.
func NewPostgres(cfg Config, logger Logger) *Postgres {
	cfg = cfg.withDefaults()

	conn, err := connectToPostgres(logger, cfg)
	if err != nil {
		logger.Fatal("error in connecting to postgres", err, nil)
	}

	if err := conn.AutoMigrate(&document.Metadata{}); err != nil {
		logger.Fatal("error migrating document metadata schema", err, nil)
	}

	return &Postgres{
		Client: conn,
		cfg:    cfg,
		logger: logger,
	}
}

// connectToPostgres establishes a connection to the PostgreSQL database using
// the provided configuration and configures the connection pool.
func connectToPostgres(logger Logger, cfg Config) (*gorm.DB, error) {
	pgConnStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Connection.Host,
		cfg.Connection.Port,
		cfg.Connection.User,
		cfg.Connection.Password,
		cfg.Connection.DbName,
		cfg.Connection.SSLMode)

	database, err := gorm.Open(
		postgres.Open(pgConnStr),
		&gorm.Config{
			TranslateError: true,
		})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL database: %w", err)
	}

	databaseInstance, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get PostgreSQL database instance: %w", err)
	}

	// Set connection pool parameters
	databaseInstance.SetMaxOpenConns(50)
	databaseInstance.SetMaxIdleConns(25)
	databaseInstance.SetConnMaxLifetime(1 * time.Minute)

	logger.Info("Successfully connected to PostgreSQL database", nil, nil)

	return database, nil
}

// GracefulShutdown closes the underlying connection pool.
func (p *Postgres) GracefulShutdown() error {
	db, err := p.Client.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
