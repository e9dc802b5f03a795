package repository

import (
	"context"
	"errors"

	"github.com/pixelforge/studio-api/internal/database"
	"github.com/pixelforge/studio-api/internal/model"
)

// MediaRepository handles stored asset reference data access.
type MediaRepository struct {
	db database.Database
}

// NewMediaRepository creates a new media repository.
func NewMediaRepository(db database.Database) *MediaRepository {
	return &MediaRepository{db: db}
}

// FindByID retrieves an asset reference by id. Returns (nil, nil) when
// absent.
func (r *MediaRepository) FindByID(ctx context.Context, id string) (*model.Media, error) {
	row, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRow[model.Media](row)
}

// FindByKey retrieves an asset reference by its unique key. Returns
// (nil, nil) when absent.
func (r *MediaRepository) FindByKey(ctx context.Context, key string) (*model.Media, error) {
	row, err := r.db.QueryOne(ctx,
		`SELECT * FROM media WHERE key = $key LIMIT 1`,
		map[string]interface{}{"key": key})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRow[model.Media](row)
}

// FindAll retrieves every asset reference, newest first.
func (r *MediaRepository) FindAll(ctx context.Context) ([]*model.Media, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM media ORDER BY created_at DESC`, nil)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.Media](rows)
}

// Insert creates an asset reference and fills in the generated id and
// timestamp. The store's unique key index surfaces as database.ErrDuplicate.
func (r *MediaRepository) Insert(ctx context.Context, media *model.Media) error {
	row, err := r.db.QueryOne(ctx, `
		CREATE media CONTENT {
			key: $key,
			url: $url,
			created_at: time::now()
		}`,
		map[string]interface{}{"key": media.Key, "url": media.URL})
	if err != nil {
		return err
	}

	created, err := decodeRow[model.Media](row)
	if err != nil {
		return err
	}
	media.ID = created.ID
	media.CreatedAt = created.CreatedAt
	return nil
}

// RemoveByID deletes an asset reference.
func (r *MediaRepository) RemoveByID(ctx context.Context, id string) error {
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": id})
}
