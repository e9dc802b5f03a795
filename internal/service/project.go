package service

import (
	"context"
	"fmt"

	"github.com/pixelforge/studio-api/internal/model"
)

// ProjectRepository defines the interface for project storage
type ProjectRepository interface {
	FindByID(ctx context.Context, id string) (*model.Project, error)
	FindAll(ctx context.Context, portfolio *model.Portfolio) ([]*model.Project, error)
	FindAllByAuthor(ctx context.Context, authorID string, portfolio *model.Portfolio) ([]*model.Project, error)
	FindAllByIDs(ctx context.Context, ids []string) ([]*model.Project, error)
	Insert(ctx context.Context, project *model.Project) error
	UpdateByID(ctx context.Context, id string, patch map[string]interface{}) error
	RemoveByID(ctx context.Context, id string) error
}

// ProjectService handles portfolio project reads and authoring.
type ProjectService struct {
	projectRepo ProjectRepository
	userRepo    UserRepository
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo ProjectRepository, userRepo UserRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, userRepo: userRepo}
}

// Get dispatches a project read to its target handler. The MY target needs a
// session; the rest are public.
func (s *ProjectService) Get(ctx context.Context, session *model.Session, req model.ProjectGetRequest) (interface{}, error) {
	var category *model.Portfolio
	if c, ok := req.Portfolio.Category(); ok {
		category = &c
	}

	switch req.Target {
	case model.ProjectGetAll:
		projects, err := s.projectRepo.FindAll(ctx, category)
		if err != nil {
			return nil, err
		}
		return exportProjects(ctx, s.userRepo, projects, false)
	case model.ProjectGetAllAsList:
		projects, err := s.projectRepo.FindAll(ctx, category)
		if err != nil {
			return nil, err
		}
		out := make([]model.ProjectListItem, 0, len(projects))
		for _, p := range projects {
			out = append(out, p.ExportListItem())
		}
		return out, nil
	case model.ProjectGetMy:
		if session == nil {
			return nil, forbidden("authentication required")
		}
		projects, err := s.projectRepo.FindAllByAuthor(ctx, session.UserID, category)
		if err != nil {
			return nil, err
		}
		return exportProjects(ctx, s.userRepo, projects, true)
	default:
		return nil, fmt.Errorf("unhandled project get target %q", req.Target)
	}
}

// Create creates a project authored by the session user.
func (s *ProjectService) Create(ctx context.Context, session *model.Session, req model.ProjectCreateRequest) (*model.ProjectExport, error) {
	if !session.CanContribute() {
		return nil, forbidden("contributor role required")
	}

	project := &model.Project{
		Portfolio:        req.Portfolio,
		Title:            req.Title,
		Description:      req.Description,
		Tags:             req.Tags,
		AuthorID:         session.UserID,
		Links:            req.Links,
		CoverImgMediaKey: req.CoverImgMediaKey,
	}
	if err := s.projectRepo.Insert(ctx, project); err != nil {
		return nil, err
	}

	names, err := nameIndex(ctx, s.userRepo, []string{project.AuthorID})
	if err != nil {
		return nil, err
	}
	export := project.Export(personRef(names, project.AuthorID), nil, true)
	return &export, nil
}

// Update edits a project. Only the author or an administrator may edit.
func (s *ProjectService) Update(ctx context.Context, session *model.Session, req model.ProjectUpdateRequest) error {
	project, err := s.projectRepo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrProjectNotFound
	}
	if err := s.authorize(session, project.AuthorID); err != nil {
		return err
	}

	patch := map[string]interface{}{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Tags != nil {
		patch["tags"] = req.Tags
	}
	if req.CollaboratorIDs != nil {
		patch["collaborator_ids"] = req.CollaboratorIDs
	}
	if req.Links != nil {
		patch["links"] = req.Links
	}
	if req.CoverImgMediaKey != nil {
		patch["cover_img_media_key"] = *req.CoverImgMediaKey
	}
	if req.MediaKeys != nil {
		patch["media_keys"] = req.MediaKeys
	}
	return s.projectRepo.UpdateByID(ctx, project.ID, patch)
}

// Remove deletes a project. Only the author or an administrator may delete.
func (s *ProjectService) Remove(ctx context.Context, session *model.Session, req model.ProjectRemoveRequest) error {
	project, err := s.projectRepo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if project == nil {
		return ErrProjectNotFound
	}
	if err := s.authorize(session, project.AuthorID); err != nil {
		return err
	}
	return s.projectRepo.RemoveByID(ctx, project.ID)
}

func (s *ProjectService) authorize(session *model.Session, authorID string) error {
	if session != nil && session.UserID == authorID {
		return nil
	}
	if session.CanAdminister() {
		return nil
	}
	return forbidden("not the author of this project")
}
