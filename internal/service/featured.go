package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pixelforge/studio-api/internal/database"
	"github.com/pixelforge/studio-api/internal/model"
)

// FeaturedRepository defines the interface for curation pointer storage
type FeaturedRepository interface {
	FindByID(ctx context.Context, id string) (*model.Featured, error)
	FindOneByContentID(ctx context.Context, contentID string) (*model.Featured, error)
	FindAll(ctx context.Context) ([]*model.Featured, error)
	FindAllByType(ctx context.Context, contentType model.FeaturedType) ([]*model.Featured, error)
	FindAllHighlight(ctx context.Context) ([]*model.Featured, error)
	Insert(ctx context.Context, featured *model.Featured) error
	UpdateHighlight(ctx context.Context, id string, isHighlight bool) error
	RemoveByID(ctx context.Context, id string) error
}

// FeaturedService curates blogs and projects onto the landing surfaces. It
// owns only pointers; the referenced content stays with its own service.
type FeaturedService struct {
	featuredRepo FeaturedRepository
	blogRepo     BlogRepository
	projectRepo  ProjectRepository
	userRepo     UserRepository
}

// NewFeaturedService creates a new featured service.
func NewFeaturedService(featuredRepo FeaturedRepository, blogRepo BlogRepository, projectRepo ProjectRepository, userRepo UserRepository) *FeaturedService {
	return &FeaturedService{
		featuredRepo: featuredRepo,
		blogRepo:     blogRepo,
		projectRepo:  projectRepo,
		userRepo:     userRepo,
	}
}

// Get dispatches a featured read to its target handler. All featured reads
// are public.
func (s *FeaturedService) Get(ctx context.Context, req model.FeaturedGetRequest) (interface{}, error) {
	switch req.Target {
	case model.FeaturedGetHighlight:
		return s.getHighlight(ctx)
	case model.FeaturedGetAllAsList:
		return s.getIndex(ctx)
	}
	if contentType, ok := req.Target.ContentType(); ok {
		return s.getByKind(ctx, contentType)
	}
	return nil, fmt.Errorf("unhandled featured get target %q", req.Target)
}

// getHighlight builds the cross-kind highlight feed. Blogs and projects are
// fetched concurrently; pointers whose content has since been deleted are
// skipped rather than surfaced as gaps.
func (s *FeaturedService) getHighlight(ctx context.Context) ([]model.HighlightCard, error) {
	pointers, err := s.featuredRepo.FindAllHighlight(ctx)
	if err != nil {
		return nil, err
	}

	blogs, projects, err := s.fetchContent(ctx, pointers)
	if err != nil {
		return nil, err
	}

	cards := make([]model.HighlightCard, 0, len(pointers))
	for _, p := range pointers {
		if p.ContentType == model.FeaturedBlog {
			blog, ok := blogs[p.ContentID]
			if !ok {
				continue
			}
			readURL := "/blog/" + blog.Slug
			cards = append(cards, model.HighlightCard{
				ID:               p.ID,
				Type:             p.ContentType,
				Title:            blog.Title,
				Tags:             blog.Tags,
				CoverImgMediaKey: blog.CoverImgMediaKey,
				ReadURL:          &readURL,
			})
			continue
		}

		project, ok := projects[p.ContentID]
		if !ok {
			continue
		}
		cards = append(cards, model.HighlightCard{
			ID:               p.ID,
			Type:             p.ContentType,
			Title:            project.Title,
			Tags:             project.Tags,
			CoverImgMediaKey: project.CoverImgMediaKey,
			GithubLink:       linkByLabel(project.Links, "github"),
			LiveDemoLink:     linkByLabel(project.Links, "live-demo"),
		})
	}
	return cards, nil
}

// getIndex builds the compact curation index. Pointers to deleted content
// stay visible with an "Unknown" title so curators can spot and retire them.
func (s *FeaturedService) getIndex(ctx context.Context) ([]model.FeaturedListItem, error) {
	pointers, err := s.featuredRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	blogs, projects, err := s.fetchContent(ctx, pointers)
	if err != nil {
		return nil, err
	}

	items := make([]model.FeaturedListItem, 0, len(pointers))
	for _, p := range pointers {
		title := "Unknown"
		if p.ContentType == model.FeaturedBlog {
			if blog, ok := blogs[p.ContentID]; ok {
				title = blog.Title
			}
		} else if project, ok := projects[p.ContentID]; ok {
			title = project.Title
		}
		items = append(items, model.FeaturedListItem{
			ID:           p.ID,
			ContentType:  p.ContentType,
			ContentTitle: title,
			IsHighlight:  p.IsHighlight,
		})
	}
	return items, nil
}

// getByKind lists the featured content of one kind in curation order.
func (s *FeaturedService) getByKind(ctx context.Context, contentType model.FeaturedType) (interface{}, error) {
	pointers, err := s.featuredRepo.FindAllByType(ctx, contentType)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(pointers))
	for _, p := range pointers {
		ids = append(ids, p.ContentID)
	}

	if contentType == model.FeaturedBlog {
		fetched, err := s.blogRepo.FindAllByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		byID := make(map[string]*model.Blog, len(fetched))
		for _, b := range fetched {
			byID[b.ID] = b
		}
		ordered := make([]*model.Blog, 0, len(ids))
		for _, id := range ids {
			if b, ok := byID[id]; ok {
				ordered = append(ordered, b)
			}
		}
		return exportBlogLists(ctx, s.userRepo, ordered)
	}

	fetched, err := s.projectRepo.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Project, len(fetched))
	for _, p := range fetched {
		byID[p.ID] = p
	}
	ordered := make([]*model.Project, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return exportProjects(ctx, s.userRepo, ordered, false)
}

// fetchContent fetches the referenced blogs and projects concurrently and
// indexes them by id.
func (s *FeaturedService) fetchContent(ctx context.Context, pointers []*model.Featured) (map[string]*model.Blog, map[string]*model.Project, error) {
	var blogIDs, projectIDs []string
	for _, p := range pointers {
		if p.ContentType == model.FeaturedBlog {
			blogIDs = append(blogIDs, p.ContentID)
		} else {
			projectIDs = append(projectIDs, p.ContentID)
		}
	}

	var (
		blogs    []*model.Blog
		projects []*model.Project
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		blogs, err = s.blogRepo.FindAllByIDs(gctx, blogIDs)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.projectRepo.FindAllByIDs(gctx, projectIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	blogIndex := make(map[string]*model.Blog, len(blogs))
	for _, b := range blogs {
		blogIndex[b.ID] = b
	}
	projectIndex := make(map[string]*model.Project, len(projects))
	for _, p := range projects {
		projectIndex[p.ID] = p
	}
	return blogIndex, projectIndex, nil
}

// Create curates a piece of content. At most one pointer may reference a
// content id: a lost pre-check race still fails through the store's unique
// index.
func (s *FeaturedService) Create(ctx context.Context, session *model.Session, req model.FeaturedCreateRequest) (*model.Featured, error) {
	if !session.CanAdminister() {
		return nil, forbidden("administrator role required")
	}

	if req.ContentType == model.FeaturedBlog {
		blog, err := s.blogRepo.FindByID(ctx, req.ContentID)
		if err != nil {
			return nil, err
		}
		if blog == nil {
			return nil, ErrBlogNotFound
		}
	} else {
		project, err := s.projectRepo.FindByID(ctx, req.ContentID)
		if err != nil {
			return nil, err
		}
		if project == nil {
			return nil, ErrProjectNotFound
		}
	}

	existing, err := s.featuredRepo.FindOneByContentID(ctx, req.ContentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyFeatured
	}

	featured := &model.Featured{
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		IsHighlight: req.IsHighlight,
	}
	if err := s.featuredRepo.Insert(ctx, featured); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrAlreadyFeatured
		}
		return nil, err
	}
	return featured, nil
}

// Update flips the highlight flag on an existing pointer.
func (s *FeaturedService) Update(ctx context.Context, session *model.Session, req model.FeaturedUpdateRequest) error {
	if !session.CanAdminister() {
		return forbidden("administrator role required")
	}

	featured, err := s.featuredRepo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if featured == nil {
		return ErrFeaturedNotFound
	}
	return s.featuredRepo.UpdateHighlight(ctx, featured.ID, req.IsHighlight)
}

// Remove retires a pointer. The referenced content is untouched.
func (s *FeaturedService) Remove(ctx context.Context, session *model.Session, req model.FeaturedRemoveRequest) error {
	featured, err := s.featuredRepo.FindByID(ctx, req.ID)
	if err != nil {
		return err
	}
	if featured == nil {
		return ErrFeaturedNotFound
	}
	if !session.CanAdminister() {
		return forbidden("administrator role required")
	}
	return s.featuredRepo.RemoveByID(ctx, featured.ID)
}

// linkByLabel finds a link by case-insensitive label match.
func linkByLabel(links []model.Link, label string) *string {
	for _, l := range links {
		if strings.EqualFold(l.Label, label) {
			url := l.URL
			return &url
		}
	}
	return nil
}
