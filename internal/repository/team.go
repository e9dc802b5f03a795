package repository

import (
	"context"
	"errors"

	"github.com/pixelforge/studio-api/internal/database"
	"github.com/pixelforge/studio-api/internal/model"
)

// TeamRepository handles team data access.
type TeamRepository struct {
	db database.Database
}

// NewTeamRepository creates a new team repository.
func NewTeamRepository(db database.Database) *TeamRepository {
	return &TeamRepository{db: db}
}

// FindByID retrieves a team by id. Returns (nil, nil) when absent.
func (r *TeamRepository) FindByID(ctx context.Context, id string) (*model.Team, error) {
	row, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRow[model.Team](row)
}

// FindByName retrieves a team by its unique name. Returns (nil, nil) when
// absent.
func (r *TeamRepository) FindByName(ctx context.Context, name string) (*model.Team, error) {
	row, err := r.db.QueryOne(ctx,
		`SELECT * FROM team WHERE name = $name LIMIT 1`,
		map[string]interface{}{"name": name})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRow[model.Team](row)
}

// FindAll retrieves every team.
func (r *TeamRepository) FindAll(ctx context.Context) ([]*model.Team, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM team ORDER BY name ASC`, nil)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.Team](rows)
}

// Insert creates a team and fills in the generated id and timestamps.
func (r *TeamRepository) Insert(ctx context.Context, team *model.Team) error {
	row, err := r.db.QueryOne(ctx, `
		CREATE team CONTENT {
			name: $name,
			description: $description,
			cover_image_media_key: $cover,
			member_ids: [],
			created_at: time::now(),
			updated_at: time::now()
		}`,
		map[string]interface{}{
			"name":        team.Name,
			"description": team.Description,
			"cover":       team.CoverImageMediaKey,
		})
	if err != nil {
		return err
	}

	created, err := decodeRow[model.Team](row)
	if err != nil {
		return err
	}
	team.ID = created.ID
	team.MemberIDs = created.MemberIDs
	team.CreatedAt = created.CreatedAt
	team.UpdatedAt = created.UpdatedAt
	return nil
}

// UpdateByID applies a field patch and refreshes the update timestamp.
func (r *TeamRepository) UpdateByID(ctx context.Context, id string, patch map[string]interface{}) error {
	return updateByID(ctx, r.db, id, patch)
}

// BatchAddMember queues adding a user to the member set.
func (r *TeamRepository) BatchAddMember(b *database.AtomicBatch, teamID, userID string) {
	b.Add(`UPDATE type::record($team) SET member_ids += $member, updated_at = time::now()`,
		map[string]interface{}{"team": teamID, "member": userID})
}

// BatchPullMember queues removing a user from the member set.
func (r *TeamRepository) BatchPullMember(b *database.AtomicBatch, teamID, userID string) {
	b.Add(`UPDATE type::record($team) SET member_ids -= $member, updated_at = time::now()`,
		map[string]interface{}{"team": teamID, "member": userID})
}

// BatchRemove queues deletion of a team record.
func (r *TeamRepository) BatchRemove(b *database.AtomicBatch, teamID string) {
	b.Add(`DELETE type::record($team)`, map[string]interface{}{"team": teamID})
}
