package repository

import (
	"context"
	"errors"

	"github.com/pixelforge/studio-api/internal/database"
	"github.com/pixelforge/studio-api/internal/model"
)

// FeaturedRepository handles curation pointer data access.
type FeaturedRepository struct {
	db database.Database
}

// NewFeaturedRepository creates a new featured repository.
func NewFeaturedRepository(db database.Database) *FeaturedRepository {
	return &FeaturedRepository{db: db}
}

// FindByID retrieves a pointer by id. Returns (nil, nil) when absent.
func (r *FeaturedRepository) FindByID(ctx context.Context, id string) (*model.Featured, error) {
	row, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRow[model.Featured](row)
}

// FindOneByContentID retrieves the pointer referencing a piece of content.
// Returns (nil, nil) when the content is not curated.
func (r *FeaturedRepository) FindOneByContentID(ctx context.Context, contentID string) (*model.Featured, error) {
	row, err := r.db.QueryOne(ctx,
		`SELECT * FROM featured WHERE content_id = $content LIMIT 1`,
		map[string]interface{}{"content": contentID})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRow[model.Featured](row)
}

// FindAll retrieves every pointer, newest first.
func (r *FeaturedRepository) FindAll(ctx context.Context) ([]*model.Featured, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM featured ORDER BY created_at DESC`, nil)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.Featured](rows)
}

// FindAllByType retrieves the pointers of one content kind, newest first.
func (r *FeaturedRepository) FindAllByType(ctx context.Context, contentType model.FeaturedType) ([]*model.Featured, error) {
	rows, err := r.db.Query(ctx,
		`SELECT * FROM featured WHERE content_type = $type ORDER BY created_at DESC`,
		map[string]interface{}{"type": string(contentType)})
	if err != nil {
		return nil, err
	}
	return decodeRows[model.Featured](rows)
}

// FindAllHighlight retrieves the pointers flagged for the highlight feed,
// newest first.
func (r *FeaturedRepository) FindAllHighlight(ctx context.Context) ([]*model.Featured, error) {
	rows, err := r.db.Query(ctx,
		`SELECT * FROM featured WHERE is_highlight = true ORDER BY created_at DESC`, nil)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.Featured](rows)
}

// Insert creates a pointer and fills in the generated id and timestamp. The
// store's unique content_id index surfaces concurrent duplicates as
// database.ErrDuplicate.
func (r *FeaturedRepository) Insert(ctx context.Context, featured *model.Featured) error {
	row, err := r.db.QueryOne(ctx, `
		CREATE featured CONTENT {
			content_type: $type,
			content_id: $content,
			is_highlight: $highlight,
			created_at: time::now()
		}`,
		map[string]interface{}{
			"type":      string(featured.ContentType),
			"content":   featured.ContentID,
			"highlight": featured.IsHighlight,
		})
	if err != nil {
		return err
	}

	created, err := decodeRow[model.Featured](row)
	if err != nil {
		return err
	}
	featured.ID = created.ID
	featured.CreatedAt = created.CreatedAt
	return nil
}

// UpdateHighlight flips the highlight flag on a pointer. Pointers carry no
// update timestamp so this skips the shared patch helper.
func (r *FeaturedRepository) UpdateHighlight(ctx context.Context, id string, isHighlight bool) error {
	return r.db.Execute(ctx,
		`UPDATE type::record($id) SET is_highlight = $highlight`,
		map[string]interface{}{"id": id, "highlight": isHighlight})
}

// RemoveByID deletes a pointer.
func (r *FeaturedRepository) RemoveByID(ctx context.Context, id string) error {
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": id})
}
