package service

import (
	"context"
	"fmt"

	"github.com/pixelforge/studio-api/internal/database"
	"github.com/pixelforge/studio-api/internal/model"
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
	FindAllByIDs(ctx context.Context, ids []string) ([]*model.User, error)
	FindAllPaginated(ctx context.Context, page, limit int) (*model.Paginated[*model.User], error)
	UpdateByID(ctx context.Context, id string, patch map[string]interface{}) error
	BatchSetTeam(b *database.AtomicBatch, userID string, teamID *string)
	BatchDetachTeam(b *database.AtomicBatch, teamID string)
	BatchRemove(b *database.AtomicBatch, userID string)
}

// TeamRepository defines the interface for team storage
type TeamRepository interface {
	FindByID(ctx context.Context, id string) (*model.Team, error)
	FindByName(ctx context.Context, name string) (*model.Team, error)
	FindAll(ctx context.Context) ([]*model.Team, error)
	Insert(ctx context.Context, team *model.Team) error
	UpdateByID(ctx context.Context, id string, patch map[string]interface{}) error
	BatchAddMember(b *database.AtomicBatch, teamID, userID string)
	BatchPullMember(b *database.AtomicBatch, teamID, userID string)
	BatchRemove(b *database.AtomicBatch, teamID string)
}

// UserService handles user reads, self-service profile updates, and the
// admin-only assignment operations.
type UserService struct {
	userRepo UserRepository
	teamRepo TeamRepository
	db       database.Database
}

// NewUserService creates a new user service.
func NewUserService(userRepo UserRepository, teamRepo TeamRepository, db database.Database) *UserService {
	return &UserService{userRepo: userRepo, teamRepo: teamRepo, db: db}
}

// Get dispatches a user read to its target handler. Public targets carry no
// authorization requirement; everything else needs an administrator session.
func (s *UserService) Get(ctx context.Context, session *model.Session, req model.UserGetRequest) (interface{}, error) {
	switch req.Target {
	case model.UserGetPublicSingle:
		return s.getPublicOne(ctx, req.ID)
	case model.UserGetPublicAll:
		return s.getPage(ctx, req.Page, req.Limit)
	}

	if !session.CanAdminister() {
		return nil, forbidden("administrator role required")
	}

	switch req.Target {
	case model.UserGetAll:
		return s.getPage(ctx, req.Page, req.Limit)
	case model.UserGetSummary:
		return s.getSummary(ctx)
	default:
		return nil, fmt.Errorf("unhandled user get target %q", req.Target)
	}
}

// getPage returns one listing page plus the unfiltered total.
func (s *UserService) getPage(ctx context.Context, page, limit int) (*model.PaginatedUsers, error) {
	result, err := s.userRepo.FindAllPaginated(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	items := make([]model.UserListItem, 0, len(result.Data))
	for _, u := range result.Data {
		items = append(items, u.ExportListItem())
	}
	return &model.PaginatedUsers{
		Users:      items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	}, nil
}

// getPublicOne returns the public profile view. The phone number and full
// timestamps are withheld at this view regardless of who asks.
func (s *UserService) getPublicOne(ctx context.Context, id string) (*model.UserPublic, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	name, err := s.teamNameFor(ctx, user.TeamID)
	if err != nil {
		return nil, err
	}
	export := user.ExportPublic(name)
	return &export, nil
}

// getSummary returns headcount totals broken down by role and by team.
func (s *UserService) getSummary(ctx context.Context) (*model.UserSummary, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	summary := &model.UserSummary{
		Total:  len(users),
		ByRole: make(map[model.Role]int),
		ByTeam: make(map[string]int),
	}
	for _, u := range users {
		for _, r := range u.Roles {
			summary.ByRole[r]++
		}
		if u.TeamID == nil {
			summary.NoTeam++
			continue
		}
		name, ok := teamNames[*u.TeamID]
		if !ok {
			name = "Unknown"
		}
		summary.ByTeam[name]++
	}
	return summary, nil
}

// Update applies a self-service profile patch for the session user.
func (s *UserService) Update(ctx context.Context, session *model.Session, req model.UserUpdateRequest) (*model.UserOwner, error) {
	if session == nil {
		return nil, forbidden("authentication required")
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	patch := map[string]interface{}{}
	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.PhoneNumber != nil {
		patch["phone_number"] = *req.PhoneNumber
	}
	if req.Links != nil {
		patch["links"] = req.Links
	}
	if req.ProfileImgMediaKey != nil {
		patch["profile_img_media_key"] = *req.ProfileImgMediaKey
	}
	if err := s.userRepo.UpdateByID(ctx, user.ID, patch); err != nil {
		return nil, err
	}

	updated, err := s.userRepo.FindByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	name, err := s.teamNameFor(ctx, updated.TeamID)
	if err != nil {
		return nil, err
	}
	export := updated.ExportOwner(name)
	return &export, nil
}

// UpdateTeam reassigns a user's team, keeping the reciprocal member
// reference on both teams in step inside one transaction. A nil TeamID
// detaches the user.
func (s *UserService) UpdateTeam(ctx context.Context, session *model.Session, req model.UserUpdateTeamRequest) error {
	if !session.CanAdminister() {
		return forbidden("administrator role required")
	}

	user, err := s.userRepo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	old := user.TeamID
	batch := database.NewAtomicBatch()

	if req.TeamID == nil {
		if old == nil {
			return nil
		}
		s.teamRepo.BatchPullMember(batch, *old, user.ID)
		s.userRepo.BatchSetTeam(batch, user.ID, nil)
		return batch.Execute(ctx, s.db)
	}

	if old != nil && *old == *req.TeamID {
		return nil
	}

	team, err := s.teamRepo.FindByID(ctx, *req.TeamID)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}

	if old != nil {
		s.teamRepo.BatchPullMember(batch, *old, user.ID)
	}
	s.teamRepo.BatchAddMember(batch, team.ID, user.ID)
	s.userRepo.BatchSetTeam(batch, user.ID, &team.ID)
	return batch.Execute(ctx, s.db)
}

// UpdateAssignment changes a user's roles and/or designation.
func (s *UserService) UpdateAssignment(ctx context.Context, session *model.Session, req model.UserUpdateAssignmentRequest) error {
	if !session.CanAdminister() {
		return forbidden("administrator role required")
	}

	user, err := s.userRepo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	patch := map[string]interface{}{}
	if req.Roles != nil {
		roles := make([]string, 0, len(req.Roles))
		for _, r := range req.Roles {
			roles = append(roles, string(r))
		}
		patch["roles"] = roles
	}
	if req.Designation != nil {
		patch["designation"] = string(*req.Designation)
	}
	return s.userRepo.UpdateByID(ctx, user.ID, patch)
}

// Remove deletes a user and pulls them out of their team in the same
// transaction.
func (s *UserService) Remove(ctx context.Context, session *model.Session, req model.UserRemoveRequest) error {
	if !session.CanAdminister() {
		return forbidden("administrator role required")
	}

	user, err := s.userRepo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	batch := database.NewAtomicBatch()
	if user.TeamID != nil {
		s.teamRepo.BatchPullMember(batch, *user.TeamID, user.ID)
	}
	s.userRepo.BatchRemove(batch, user.ID)
	return batch.Execute(ctx, s.db)
}

// teamNameFor resolves a team reference to its display name, defaulting to
// "Unknown" when the user has no team or the team is missing.
func (s *UserService) teamNameFor(ctx context.Context, teamID *string) (string, error) {
	if teamID == nil {
		return "Unknown", nil
	}
	team, err := s.teamRepo.FindByID(ctx, *teamID)
	if err != nil {
		return "", err
	}
	if team == nil {
		return "Unknown", nil
	}
	return team.Name, nil
}
