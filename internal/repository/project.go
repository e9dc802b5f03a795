package repository

import (
	"context"
	"errors"

	"github.com/pixelforge/studio-api/internal/database"
	"github.com/pixelforge/studio-api/internal/model"
)

// ProjectRepository handles portfolio project data access.
type ProjectRepository struct {
	db database.Database
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db database.Database) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindByID retrieves a project by id. Returns (nil, nil) when absent.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*model.Project, error) {
	row, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRow[model.Project](row)
}

// FindAll retrieves projects, newest first, optionally narrowed to one
// portfolio category.
func (r *ProjectRepository) FindAll(ctx context.Context, portfolio *model.Portfolio) ([]*model.Project, error) {
	query := `SELECT * FROM project ORDER BY created_at DESC`
	vars := map[string]interface{}{}
	if portfolio != nil {
		query = `SELECT * FROM project WHERE portfolio = $portfolio ORDER BY created_at DESC`
		vars["portfolio"] = string(*portfolio)
	}
	rows, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.Project](rows)
}

// FindAllByAuthor retrieves one author's projects, optionally narrowed to a
// portfolio category.
func (r *ProjectRepository) FindAllByAuthor(ctx context.Context, authorID string, portfolio *model.Portfolio) ([]*model.Project, error) {
	query := `SELECT * FROM project WHERE author_id = $author ORDER BY created_at DESC`
	vars := map[string]interface{}{"author": authorID}
	if portfolio != nil {
		query = `SELECT * FROM project WHERE author_id = $author AND portfolio = $portfolio ORDER BY created_at DESC`
		vars["portfolio"] = string(*portfolio)
	}
	rows, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.Project](rows)
}

// FindAllByIDs retrieves the projects whose ids appear in the set.
func (r *ProjectRepository) FindAllByIDs(ctx context.Context, ids []string) ([]*model.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT * FROM project WHERE id IN $ids`,
		map[string]interface{}{"ids": recordSet(ids)})
	if err != nil {
		return nil, err
	}
	return decodeRows[model.Project](rows)
}

// Insert creates a project and fills in the generated id and timestamps.
func (r *ProjectRepository) Insert(ctx context.Context, project *model.Project) error {
	row, err := r.db.QueryOne(ctx, `
		CREATE project CONTENT {
			portfolio: $portfolio,
			title: $title,
			description: $description,
			tags: $tags,
			author_id: $author,
			collaborator_ids: [],
			links: $links,
			cover_img_media_key: $cover,
			media_keys: [],
			created_at: time::now(),
			updated_at: time::now()
		}`,
		map[string]interface{}{
			"portfolio":   string(project.Portfolio),
			"title":       project.Title,
			"description": project.Description,
			"tags":        project.Tags,
			"author":      project.AuthorID,
			"links":       linkMaps(project.Links),
			"cover":       project.CoverImgMediaKey,
		})
	if err != nil {
		return err
	}

	created, err := decodeRow[model.Project](row)
	if err != nil {
		return err
	}
	project.ID = created.ID
	project.CollaboratorIDs = created.CollaboratorIDs
	project.MediaKeys = created.MediaKeys
	project.CreatedAt = created.CreatedAt
	project.UpdatedAt = created.UpdatedAt
	return nil
}

// UpdateByID applies a field patch and refreshes the update timestamp.
func (r *ProjectRepository) UpdateByID(ctx context.Context, id string, patch map[string]interface{}) error {
	return updateByID(ctx, r.db, id, patch)
}

// RemoveByID deletes a project.
func (r *ProjectRepository) RemoveByID(ctx context.Context, id string) error {
	return r.db.Execute(ctx, `DELETE type::record($id)`, map[string]interface{}{"id": id})
}

// linkMaps renders links as plain maps for CONTENT clauses.
func linkMaps(links []model.Link) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(links))
	for _, l := range links {
		out = append(out, map[string]interface{}{"label": l.Label, "url": l.URL})
	}
	return out
}
