package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixelforge/studio-api/internal/database"
	"github.com/pixelforge/studio-api/internal/model"
)

// TeamService handles team reads and the admin-only roster operations.
type TeamService struct {
	teamRepo TeamRepository
	userRepo UserRepository
	db       database.Database
}

// NewTeamService creates a new team service.
func NewTeamService(teamRepo TeamRepository, userRepo UserRepository, db database.Database) *TeamService {
	return &TeamService{teamRepo: teamRepo, userRepo: userRepo, db: db}
}

// Get dispatches a team read to its target handler. All team reads are
// public.
func (s *TeamService) Get(ctx context.Context, req model.TeamGetRequest) (interface{}, error) {
	switch req.Target {
	case model.TeamGetOne:
		return s.getOne(ctx, req.ID)
	case model.TeamGetAll:
		return s.getAll(ctx)
	case model.TeamGetAllAsList:
		return s.getAllAsList(ctx)
	default:
		return nil, fmt.Errorf("unhandled team get target %q", req.Target)
	}
}

func (s *TeamService) getOne(ctx context.Context, id string) (*model.TeamExport, error) {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	members, err := s.userRepo.FindAllByIDs(ctx, team.MemberIDs)
	if err != nil {
		return nil, err
	}
	export := team.Export(members)
	return &export, nil
}

// getAll resolves every team's members with a single user fetch.
func (s *TeamService) getAll(ctx context.Context) ([]model.TeamExport, error) {
	teams, err := s.teamRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var memberIDs []string
	for _, t := range teams {
		memberIDs = append(memberIDs, t.MemberIDs...)
	}
	users, err := s.userRepo.FindAllByIDs(ctx, memberIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]model.TeamExport, 0, len(teams))
	for _, t := range teams {
		members := make([]*model.User, 0, len(t.MemberIDs))
		for _, id := range t.MemberIDs {
			if u, ok := byID[id]; ok {
				members = append(members, u)
			}
		}
		out = append(out, t.Export(members))
	}
	return out, nil
}

func (s *TeamService) getAllAsList(ctx context.Context) ([]model.TeamRef, error) {
	teams, err := s.teamRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.TeamRef, 0, len(teams))
	for _, t := range teams {
		out = append(out, t.ExportRef())
	}
	return out, nil
}

// Create creates an empty team with a unique name.
func (s *TeamService) Create(ctx context.Context, session *model.Session, req model.TeamCreateRequest) (*model.TeamExport, error) {
	if !session.CanAdminister() {
		return nil, forbidden("administrator role required")
	}

	existing, err := s.teamRepo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTeamNameTaken
	}

	team := &model.Team{Name: req.Name, Description: req.Description}
	if err := s.teamRepo.Insert(ctx, team); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrTeamNameTaken
		}
		return nil, err
	}
	export := team.Export(nil)
	return &export, nil
}

// Update edits team metadata. The member roster is edited only through
// EditMembers.
func (s *TeamService) Update(ctx context.Context, session *model.Session, req model.TeamUpdateRequest) error {
	if !session.CanAdminister() {
		return forbidden("administrator role required")
	}

	team, err := s.teamRepo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}

	patch := map[string]interface{}{}
	if req.Name != nil && *req.Name != team.Name {
		other, err := s.teamRepo.FindByName(ctx, *req.Name)
		if err != nil {
			return err
		}
		if other != nil {
			return ErrTeamNameTaken
		}
		patch["name"] = *req.Name
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.CoverImageMediaKey != nil {
		patch["cover_image_media_key"] = *req.CoverImageMediaKey
	}

	if err := s.teamRepo.UpdateByID(ctx, team.ID, patch); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return ErrTeamNameTaken
		}
		return err
	}
	return nil
}

// EditMembers adds or removes members, maintaining the reciprocal team
// reference on every touched user inside one transaction. Adding a user who
// belongs to another team moves them.
func (s *TeamService) EditMembers(ctx context.Context, session *model.Session, req model.TeamEditMembersRequest) error {
	if !session.CanAdminister() {
		return forbidden("administrator role required")
	}

	team, err := s.teamRepo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}

	users, err := s.userRepo.FindAllByIDs(ctx, req.MemberIDs)
	if err != nil {
		return err
	}
	if len(users) != len(req.MemberIDs) {
		return ErrUserNotFound
	}

	batch := database.NewAtomicBatch()
	switch req.Action {
	case model.TeamMemberAdd:
		for _, u := range users {
			if u.TeamID != nil && *u.TeamID == team.ID {
				continue
			}
			if u.TeamID != nil {
				s.teamRepo.BatchPullMember(batch, *u.TeamID, u.ID)
			}
			s.teamRepo.BatchAddMember(batch, team.ID, u.ID)
			s.userRepo.BatchSetTeam(batch, u.ID, &team.ID)
		}
	case model.TeamMemberRemove:
		for _, u := range users {
			if u.TeamID == nil || *u.TeamID != team.ID {
				return ErrNotTeamMember
			}
			s.teamRepo.BatchPullMember(batch, team.ID, u.ID)
			s.userRepo.BatchSetTeam(batch, u.ID, nil)
		}
	default:
		return fmt.Errorf("unhandled member action %q", req.Action)
	}
	return batch.Execute(ctx, s.db)
}

// Remove deletes a team and clears the team reference of every member in the
// same transaction.
func (s *TeamService) Remove(ctx context.Context, session *model.Session, req model.TeamRemoveRequest) error {
	if !session.CanAdminister() {
		return forbidden("administrator role required")
	}

	team, err := s.teamRepo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}

	batch := database.NewAtomicBatch()
	s.userRepo.BatchDetachTeam(batch, team.ID)
	s.teamRepo.BatchRemove(batch, team.ID)
	return batch.Execute(ctx, s.db)
}
