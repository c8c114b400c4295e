package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Aleph-Alpha/docindex/internal/document"
)

// DocumentRepository implements Documents on top of a gorm connection.
// It is a pure persistence boundary: all record defaults (id, timestamp,
// initial status) are assigned by the caller before Create.
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a repository bound to the given connection.
func NewDocumentRepository(pg *Postgres) *DocumentRepository {
	return &DocumentRepository{db: pg.Client}
}

// Create persists a new metadata record. Errors are translated to the
// package's sentinel kinds.
func (r *DocumentRepository) Create(ctx context.Context, meta *document.Metadata) error {
	if err := r.db.WithContext(ctx).Create(meta).Error; err != nil {
		return TranslateError(err)
	}
	return nil
}

// GetByID returns the record with the given id, or ErrNotFound.
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*document.Metadata, error) {
	var meta document.Metadata
	if err := r.db.WithContext(ctx).First(&meta, "id = ?", id).Error; err != nil {
		return nil, TranslateError(err)
	}
	return &meta, nil
}
