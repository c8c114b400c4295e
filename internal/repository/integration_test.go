package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Aleph-Alpha/docindex/internal/document"
)

type testLogger struct{ t *testing.T }

func (l testLogger) Info(msg string, err error, fields ...map[string]interface{})  { l.t.Log(msg, err) }
func (l testLogger) Warn(msg string, err error, fields ...map[string]interface{})  { l.t.Log(msg, err) }
func (l testLogger) Error(msg string, err error, fields ...map[string]interface{}) { l.t.Log(msg, err) }
func (l testLogger) Fatal(msg string, err error, fields ...map[string]interface{}) {
	l.t.Fatal(msg, err)
}

// setupPostgresContainer starts a throwaway Postgres container and returns a
// Config pointing at it.
func setupPostgresContainer(ctx context.Context, t *testing.T) Config {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return Config{
		Connection: Connection{
			Host:     host,
			Port:     mappedPort.Port(),
			User:     "testuser",
			Password: "testpass",
			DbName:   "testdb",
			SSLMode:  "disable",
		},
	}
}

func TestDocumentRepository_Integration(t *testing.T) {
	// Skip if running in short mode
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := setupPostgresContainer(ctx, t)

	pg := NewPostgres(cfg, testLogger{t})
	t.Cleanup(func() { _ = pg.GracefulShutdown() })
	repo := NewDocumentRepository(pg)

	t.Run("create and get round-trip", func(t *testing.T) {
		path := "/var/uploads/" + uuid.NewString() + ".pdf"
		meta := &document.Metadata{
			ID:               uuid.New(),
			OriginalFileName: "invoice.pdf",
			UploadedAt:       time.Now().UTC().Truncate(time.Microsecond),
			FilePath:         &path,
			Status:           document.StatusReceived,
		}

		require.NoError(t, repo.Create(ctx, meta))

		got, err := repo.GetByID(ctx, meta.ID)
		require.NoError(t, err)
		assert.Equal(t, meta.ID, got.ID)
		assert.Equal(t, meta.OriginalFileName, got.OriginalFileName)
		assert.Equal(t, meta.UploadedAt, got.UploadedAt.UTC())
		require.NotNil(t, got.FilePath)
		assert.Equal(t, path, *got.FilePath)
		assert.Equal(t, document.StatusReceived, got.Status)
	})

	t.Run("nil file path survives round-trip", func(t *testing.T) {
		meta := &document.Metadata{
			ID:               uuid.New(),
			OriginalFileName: "registered-without-upload.pdf",
			UploadedAt:       time.Now().UTC(),
			Status:           document.StatusReceived,
		}

		require.NoError(t, repo.Create(ctx, meta))

		got, err := repo.GetByID(ctx, meta.ID)
		require.NoError(t, err)
		assert.Nil(t, got.FilePath)
	})

	t.Run("duplicate id is an integrity failure", func(t *testing.T) {
		meta := &document.Metadata{
			ID:               uuid.New(),
			OriginalFileName: "dup.pdf",
			UploadedAt:       time.Now().UTC(),
			Status:           document.StatusReceived,
		}
		require.NoError(t, repo.Create(ctx, meta))

		err := repo.Create(ctx, &document.Metadata{
			ID:               meta.ID,
			OriginalFileName: "dup-again.pdf",
			UploadedAt:       time.Now().UTC(),
			Status:           document.StatusReceived,
		})
		require.Error(t, err)
		assert.True(t, IsIntegrity(err), "expected integrity kind, got %v", err)
		assert.False(t, IsRetryable(err))
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		assert.True(t, IsNotFound(err), fmt.Sprintf("expected not-found, got %v", err))
	})
}
