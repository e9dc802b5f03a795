package repository

import (
	"context"
	"errors"

	"github.com/pixelforge/studio-api/internal/database"
	"github.com/pixelforge/studio-api/internal/model"
)

// BlogRepository handles article data access.
type BlogRepository struct {
	db database.Database
}

// NewBlogRepository creates a new blog repository.
func NewBlogRepository(db database.Database) *BlogRepository {
	return &BlogRepository{db: db}
}

// FindByID retrieves an article by id. Returns (nil, nil) when absent.
func (r *BlogRepository) FindByID(ctx context.Context, id string) (*model.Blog, error) {
	row, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRow[model.Blog](row)
}

// FindBySlug retrieves an article by its unique slug. Returns (nil, nil)
// when absent.
func (r *BlogRepository) FindBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	row, err := r.db.QueryOne(ctx,
		`SELECT * FROM blog WHERE slug = $slug LIMIT 1`,
		map[string]interface{}{"slug": slug})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRow[model.Blog](row)
}

// FindAll retrieves every article, newest first.
func (r *BlogRepository) FindAll(ctx context.Context) ([]*model.Blog, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM blog ORDER BY created_at DESC`, nil)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.Blog](rows)
}

// FindAllByAuthor retrieves the articles authored by one user, newest first.
func (r *BlogRepository) FindAllByAuthor(ctx context.Context, authorID string) ([]*model.Blog, error) {
	rows, err := r.db.Query(ctx,
		`SELECT * FROM blog WHERE author_id = $author ORDER BY created_at DESC`,
		map[string]interface{}{"author": authorID})
	if err != nil {
		return nil, err
	}
	return decodeRows[model.Blog](rows)
}

// FindAllByIDs retrieves the articles whose ids appear in the set.
func (r *BlogRepository) FindAllByIDs(ctx context.Context, ids []string) ([]*model.Blog, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT * FROM blog WHERE id IN $ids`,
		map[string]interface{}{"ids": recordSet(ids)})
	if err != nil {
		return nil, err
	}
	return decodeRows[model.Blog](rows)
}

// Insert creates an article and fills in the generated id and timestamps.
// The store's unique slug index surfaces as database.ErrDuplicate.
func (r *BlogRepository) Insert(ctx context.Context, blog *model.Blog) error {
	row, err := r.db.QueryOne(ctx, `
		CREATE blog CONTENT {
			title: $title,
			slug: $slug,
			content: $content,
			tags: $tags,
			author_id: $author,
			collaborator_ids: [],
			cover_img_media_key: $cover,
			created_at: time::now(),
			updated_at: time::now()
		}`,
		map[string]interface{}{
			"title":   blog.Title,
			"slug":    blog.Slug,
			"content": blog.Content,
			"tags":    blog.Tags,
			"author":  blog.AuthorID,
			"cover":   blog.CoverImgMediaKey,
		})
	if err != nil {
		return err
	}

	created, err := decodeRow[model.Blog](row)
	if err != nil {
		return err
	}
	blog.ID = created.ID
	blog.CollaboratorIDs = created.CollaboratorIDs
	blog.CreatedAt = created.CreatedAt
	blog.UpdatedAt = created.UpdatedAt
	return nil
}

// UpdateByID applies a field patch and refreshes the update timestamp.
func (r *BlogRepository) UpdateByID(ctx context.Context, id string, patch map[string]interface{}) error {
	return updateByID(ctx, r.db, id, patch)
}

// RemoveByID deletes an article.
func (r *BlogRepository) RemoveByID(ctx context.Context, id string) error {
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": id})
}
