package repository

import (
	"context"
	"errors"

	"github.com/pixelforge/studio-api/internal/database"
	"github.com/pixelforge/studio-api/internal/model"
)

// UserRepository handles user data access.
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID retrieves a user by id. Returns (nil, nil) when absent.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	row, err := r.db.QueryOne(ctx, `SELECT * FROM type::record($id)`, map[string]interface{}{"id": id})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRow[model.User](row)
}

// FindByEmail retrieves a user by email. Returns (nil, nil) when absent.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	row, err := r.db.QueryOne(ctx,
		`SELECT * FROM user WHERE email = $email LIMIT 1`,
		map[string]interface{}{"email": email})
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return decodeRow[model.User](row)
}

// FindAll retrieves every user.
func (r *UserRepository) FindAll(ctx context.Context) ([]*model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT * FROM user ORDER BY created_at DESC`, nil)
	if err != nil {
		return nil, err
	}
	return decodeRows[model.User](rows)
}

// FindAllByIDs retrieves the users whose ids appear in the set. Missing ids
// are silently absent from the result.
func (r *UserRepository) FindAllByIDs(ctx context.Context, ids []string) ([]*model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT * FROM user WHERE id IN $ids`,
		map[string]interface{}{"ids": recordSet(ids)})
	if err != nil {
		return nil, err
	}
	return decodeRows[model.User](rows)
}

// FindAllPaginated retrieves one page of users plus the unfiltered total.
func (r *UserRepository) FindAllPaginated(ctx context.Context, page, limit int) (*model.Paginated[*model.User], error) {
	rows, err := r.db.Query(ctx,
		`SELECT * FROM user ORDER BY created_at DESC LIMIT $limit START $start`,
		map[string]interface{}{"limit": limit, "start": (page - 1) * limit})
	if err != nil {
		return nil, err
	}
	users, err := decodeRows[model.User](rows)
	if err != nil {
		return nil, err
	}

	countRow, err := r.db.QueryOne(ctx, `SELECT count() FROM user GROUP ALL`, nil)
	total := 0
	if err == nil {
		total, err = countFrom(countRow)
		if err != nil {
			return nil, err
		}
	} else if !errors.Is(err, database.ErrNotFound) {
		return nil, err
	}

	return &model.Paginated[*model.User]{
		Data:       users,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: model.TotalPagesFor(total, limit),
	}, nil
}

// UpdateByID applies a field patch and refreshes the update timestamp.
func (r *UserRepository) UpdateByID(ctx context.Context, id string, patch map[string]interface{}) error {
	return updateByID(ctx, r.db, id, patch)
}

// BatchSetTeam queues a team-reference update. A nil teamID clears the
// reference.
func (r *UserRepository) BatchSetTeam(b *database.AtomicBatch, userID string, teamID *string) {
	var value interface{}
	if teamID != nil {
		value = *teamID
	}
	b.Add(`UPDATE type::record($user) SET team_id = $team, updated_at = time::now()`,
		map[string]interface{}{"user": userID, "team": value})
}

// BatchDetachTeam queues clearing the team reference of every user on the
// given team.
func (r *UserRepository) BatchDetachTeam(b *database.AtomicBatch, teamID string) {
	b.Add(`UPDATE user SET team_id = NONE, updated_at = time::now() WHERE team_id = $team`,
		map[string]interface{}{"team": teamID})
}

// BatchRemove queues deletion of a user record.
func (r *UserRepository) BatchRemove(b *database.AtomicBatch, userID string) {
	b.Add(`DELETE type::record($user)`, map[string]interface{}{"user": userID})
}
