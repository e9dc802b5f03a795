package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixelforge/studio-api/internal/database"
	"github.com/pixelforge/studio-api/internal/model"
)

// BlogRepository defines the interface for blog storage
type BlogRepository interface {
	FindByID(ctx context.Context, id string) (*model.Blog, error)
	FindBySlug(ctx context.Context, slug string) (*model.Blog, error)
	FindAll(ctx context.Context) ([]*model.Blog, error)
	FindAllByAuthor(ctx context.Context, authorID string) ([]*model.Blog, error)
	FindAllByIDs(ctx context.Context, ids []string) ([]*model.Blog, error)
	Insert(ctx context.Context, blog *model.Blog) error
	UpdateByID(ctx context.Context, id string, patch map[string]interface{}) error
	RemoveByID(ctx context.Context, id string) error
}

// BlogService handles article reads and authoring. Articles are addressed
// publicly by slug; the slug is fixed at creation.
type BlogService struct {
	blogRepo BlogRepository
	userRepo UserRepository
}

// NewBlogService creates a new blog service.
func NewBlogService(blogRepo BlogRepository, userRepo UserRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo, userRepo: userRepo}
}

// Get dispatches a blog read to its target handler. The MY target needs a
// session; the rest are public.
func (s *BlogService) Get(ctx context.Context, session *model.Session, req model.BlogGetRequest) (interface{}, error) {
	switch req.Target {
	case model.BlogGetAll:
		blogs, err := s.blogRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return exportBlogLists(ctx, s.userRepo, blogs)
	case model.BlogGetAllAsList:
		blogs, err := s.blogRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]model.BlogListItem, 0, len(blogs))
		for _, b := range blogs {
			out = append(out, b.ExportListItem())
		}
		return out, nil
	case model.BlogGetMy:
		if session == nil {
			return nil, forbidden("authentication required")
		}
		blogs, err := s.blogRepo.FindAllByAuthor(ctx, session.UserID)
		if err != nil {
			return nil, err
		}
		return exportBlogLists(ctx, s.userRepo, blogs)
	case model.BlogGetBySlug:
		return s.getBySlug(ctx, req.Slug)
	default:
		return nil, fmt.Errorf("unhandled blog get target %q", req.Target)
	}
}

// getBySlug returns the full article including its body.
func (s *BlogService) getBySlug(ctx context.Context, slug string) (*model.BlogExport, error) {
	blog, err := s.blogRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrSlugNotFound
	}

	names, err := nameIndex(ctx, s.userRepo, append([]string{blog.AuthorID}, blog.CollaboratorIDs...))
	if err != nil {
		return nil, err
	}
	export := blog.Export(personRef(names, blog.AuthorID), personRefs(names, blog.CollaboratorIDs))
	return &export, nil
}

// Create publishes an article authored by the session user. The slug must be
// unused; a concurrent duplicate surfaces through the store's unique index.
func (s *BlogService) Create(ctx context.Context, session *model.Session, req model.BlogCreateRequest) (*model.BlogExport, error) {
	if !session.CanContribute() {
		return nil, forbidden("contributor role required")
	}

	existing, err := s.blogRepo.FindBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugInUse
	}

	blog := &model.Blog{
		Title:            req.Title,
		Slug:             req.Slug,
		Content:          req.Content,
		Tags:             req.Tags,
		AuthorID:         session.UserID,
		CoverImgMediaKey: req.CoverImgMediaKey,
	}
	if err := s.blogRepo.Insert(ctx, blog); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrSlugInUse
		}
		return nil, err
	}

	names, err := nameIndex(ctx, s.userRepo, []string{blog.AuthorID})
	if err != nil {
		return nil, err
	}
	export := blog.Export(personRef(names, blog.AuthorID), nil)
	return &export, nil
}

// Update edits an article. Only the author or an administrator may edit; the
// slug is never part of the patch.
func (s *BlogService) Update(ctx context.Context, session *model.Session, req model.BlogUpdateRequest) error {
	blog, err := s.blogRepo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if blog == nil {
		return ErrBlogNotFound
	}
	if err := s.authorize(session, blog.AuthorID); err != nil {
		return err
	}

	patch := map[string]interface{}{}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Content != nil {
		patch["content"] = *req.Content
	}
	if req.Tags != nil {
		patch["tags"] = req.Tags
	}
	if req.CollaboratorIDs != nil {
		patch["collaborator_ids"] = req.CollaboratorIDs
	}
	if req.CoverImgMediaKey != nil {
		patch["cover_img_media_key"] = *req.CoverImgMediaKey
	}
	return s.blogRepo.UpdateByID(ctx, blog.ID, patch)
}

// Remove deletes an article. Only the author or an administrator may delete.
func (s *BlogService) Remove(ctx context.Context, session *model.Session, req model.BlogRemoveRequest) error {
	blog, err := s.blogRepo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if blog == nil {
		return ErrBlogNotFound
	}
	if err := s.authorize(session, blog.AuthorID); err != nil {
		return err
	}
	return s.blogRepo.RemoveByID(ctx, blog.ID)
}

func (s *BlogService) authorize(session *model.Session, authorID string) error {
	if session != nil && session.UserID == authorID {
		return nil
	}
	if session.CanAdminister() {
		return nil
	}
	return forbidden("not the author of this blog")
}
