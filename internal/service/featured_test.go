package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelforge/studio-api/internal/database"
	"github.com/pixelforge/studio-api/internal/model"
)

func newTestFeaturedService(featuredRepo *mockFeaturedRepo, blogRepo *mockBlogRepo, projectRepo *mockProjectRepo, userRepo *mockUserRepo) *FeaturedService {
	if featuredRepo == nil {
		featuredRepo = &mockFeaturedRepo{}
	}
	if blogRepo == nil {
		blogRepo = &mockBlogRepo{}
	}
	if projectRepo == nil {
		projectRepo = &mockProjectRepo{}
	}
	if userRepo == nil {
		userRepo = &mockUserRepo{}
	}
	return NewFeaturedService(featuredRepo, blogRepo, projectRepo, userRepo)
}

func TestFeaturedGetHighlight_BlogCardCarriesReadURLOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	featuredRepo := &mockFeaturedRepo{
		findAllHighlightFunc: func(ctx context.Context) ([]*model.Featured, error) {
			return []*model.Featured{
				{ID: "featured:1", ContentType: model.FeaturedBlog, ContentID: "blog:1", IsHighlight: true},
			}, nil
		},
	}
	blogRepo := &mockBlogRepo{
		findAllByIDsFunc: func(ctx context.Context, ids []string) ([]*model.Blog, error) {
			return []*model.Blog{{ID: "blog:1", Title: "Shaders", Slug: "shaders", Tags: []string{"gfx"}}}, nil
		},
	}
	svc := newTestFeaturedService(featuredRepo, blogRepo, nil, nil)

	cards, err := svc.getHighlight(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)

	card := cards[0]
	assert.Equal(t, model.FeaturedBlog, card.Type)
	assert.Equal(t, "Shaders", card.Title)
	require.NotNil(t, card.ReadURL)
	assert.Equal(t, "/blog/shaders", *card.ReadURL)
	assert.Nil(t, card.GithubLink)
	assert.Nil(t, card.LiveDemoLink)
}

func TestFeaturedGetHighlight_ProjectCardCarriesLabelledLinks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	featuredRepo := &mockFeaturedRepo{
		findAllHighlightFunc: func(ctx context.Context) ([]*model.Featured, error) {
			return []*model.Featured{
				{ID: "featured:1", ContentType: model.FeaturedGame, ContentID: "project:1", IsHighlight: true},
			}, nil
		},
	}
	projectRepo := &mockProjectRepo{
		findAllByIDsFunc: func(ctx context.Context, ids []string) ([]*model.Project, error) {
			return []*model.Project{{
				ID:    "project:1",
				Title: "Orbit",
				Links: []model.Link{
					{Label: "GitHub", URL: "https://github.com/pixelforge/orbit"},
					{Label: "Live-Demo", URL: "https://orbit.example.com"},
					{Label: "docs", URL: "https://docs.example.com"},
				},
			}}, nil
		},
	}
	svc := newTestFeaturedService(featuredRepo, nil, projectRepo, nil)

	cards, err := svc.getHighlight(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)

	card := cards[0]
	assert.Equal(t, model.FeaturedGame, card.Type)
	assert.Nil(t, card.ReadURL)
	// Label matching is case-insensitive.
	require.NotNil(t, card.GithubLink)
	assert.Equal(t, "https://github.com/pixelforge/orbit", *card.GithubLink)
	require.NotNil(t, card.LiveDemoLink)
	assert.Equal(t, "https://orbit.example.com", *card.LiveDemoLink)
}

func TestFeaturedGetHighlight_DanglingPointerSkipped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	featuredRepo := &mockFeaturedRepo{
		findAllHighlightFunc: func(ctx context.Context) ([]*model.Featured, error) {
			return []*model.Featured{
				{ID: "featured:1", ContentType: model.FeaturedBlog, ContentID: "blog:gone", IsHighlight: true},
				{ID: "featured:2", ContentType: model.FeaturedBlog, ContentID: "blog:1", IsHighlight: true},
			}, nil
		},
	}
	blogRepo := &mockBlogRepo{
		findAllByIDsFunc: func(ctx context.Context, ids []string) ([]*model.Blog, error) {
			return []*model.Blog{{ID: "blog:1", Title: "Still Here", Slug: "still-here"}}, nil
		},
	}
	svc := newTestFeaturedService(featuredRepo, blogRepo, nil, nil)

	cards, err := svc.getHighlight(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Still Here", cards[0].Title)
}

func TestFeaturedGetIndex_DanglingPointerShownAsUnknown(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	featuredRepo := &mockFeaturedRepo{
		findAllFunc: func(ctx context.Context) ([]*model.Featured, error) {
			return []*model.Featured{
				{ID: "featured:1", ContentType: model.FeaturedGame, ContentID: "project:gone", IsHighlight: false},
				{ID: "featured:2", ContentType: model.FeaturedBlog, ContentID: "blog:1", IsHighlight: true},
			}, nil
		},
	}
	blogRepo := &mockBlogRepo{
		findAllByIDsFunc: func(ctx context.Context, ids []string) ([]*model.Blog, error) {
			return []*model.Blog{{ID: "blog:1", Title: "Shaders"}}, nil
		},
	}
	projectRepo := &mockProjectRepo{
		findAllByIDsFunc: func(ctx context.Context, ids []string) ([]*model.Project, error) {
			return nil, nil
		},
	}
	svc := newTestFeaturedService(featuredRepo, blogRepo, projectRepo, nil)

	items, err := svc.getIndex(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Unknown", items[0].ContentTitle)
	assert.Equal(t, "Shaders", items[1].ContentTitle)
	assert.True(t, items[1].IsHighlight)
}

func TestFeaturedGetByKind_KeepsCurationOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	featuredRepo := &mockFeaturedRepo{
		findAllByTypeFunc: func(ctx context.Context, contentType model.FeaturedType) ([]*model.Featured, error) {
			return []*model.Featured{
				{ID: "featured:1", ContentType: contentType, ContentID: "blog:b"},
				{ID: "featured:2", ContentType: contentType, ContentID: "blog:a"},
			}, nil
		},
	}
	blogRepo := &mockBlogRepo{
		findAllByIDsFunc: func(ctx context.Context, ids []string) ([]*model.Blog, error) {
			// Store order differs from curation order.
			return []*model.Blog{
				{ID: "blog:a", Title: "Alpha", AuthorID: "user:1"},
				{ID: "blog:b", Title: "Beta", AuthorID: "user:1"},
			}, nil
		},
	}
	svc := newTestFeaturedService(featuredRepo, blogRepo, nil, nil)

	result, err := svc.Get(ctx, model.FeaturedGetRequest{Target: model.FeaturedGetBlog})
	require.NoError(t, err)

	lists, ok := result.([]model.BlogListExport)
	require.True(t, ok)
	require.Len(t, lists, 2)
	assert.Equal(t, "Beta", lists[0].Title)
	assert.Equal(t, "Alpha", lists[1].Title)
}

func TestFeaturedCreate_NonAdmin_Forbidden(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	featuredRepo := &mockFeaturedRepo{}
	svc := newTestFeaturedService(featuredRepo, nil, nil, nil)

	_, err := svc.Create(ctx, memberSession("user:m"), model.FeaturedCreateRequest{
		ContentType: model.FeaturedBlog,
		ContentID:   "blog:1",
	})
	assert.ErrorIs(t, err, forbidden(""))
	assert.Equal(t, 0, featuredRepo.insertCount)
}

func TestFeaturedCreate_ContentMissing_ReportsPerKind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestFeaturedService(nil, nil, nil, nil)

	_, err := svc.Create(ctx, adminSession(), model.FeaturedCreateRequest{
		ContentType: model.FeaturedBlog,
		ContentID:   "blog:ghost",
	})
	assert.ErrorIs(t, err, ErrBlogNotFound)

	_, err = svc.Create(ctx, adminSession(), model.FeaturedCreateRequest{
		ContentType: model.FeaturedGame,
		ContentID:   "project:ghost",
	})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestFeaturedCreate_AlreadyFeatured_NoSecondInsert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	featuredRepo := &mockFeaturedRepo{
		findOneByContentIDFunc: func(ctx context.Context, contentID string) (*model.Featured, error) {
			return &model.Featured{ID: "featured:1", ContentID: contentID}, nil
		},
	}
	blogRepo := &mockBlogRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.Blog, error) {
			return &model.Blog{ID: id}, nil
		},
	}
	svc := newTestFeaturedService(featuredRepo, blogRepo, nil, nil)

	_, err := svc.Create(ctx, adminSession(), model.FeaturedCreateRequest{
		ContentType: model.FeaturedBlog,
		ContentID:   "blog:1",
	})
	assert.ErrorIs(t, err, ErrAlreadyFeatured)
	assert.Equal(t, 0, featuredRepo.insertCount)
}

func TestFeaturedCreate_LostRace_UniqueIndexStillReported(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	featuredRepo := &mockFeaturedRepo{
		insertFunc: func(ctx context.Context, featured *model.Featured) error {
			return database.ErrDuplicate
		},
	}
	blogRepo := &mockBlogRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.Blog, error) {
			return &model.Blog{ID: id}, nil
		},
	}
	svc := newTestFeaturedService(featuredRepo, blogRepo, nil, nil)

	_, err := svc.Create(ctx, adminSession(), model.FeaturedCreateRequest{
		ContentType: model.FeaturedBlog,
		ContentID:   "blog:1",
	})
	assert.ErrorIs(t, err, ErrAlreadyFeatured)
}

func TestFeaturedUpdate_Missing_ReturnsFeaturedNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestFeaturedService(nil, nil, nil, nil)

	err := svc.Update(ctx, adminSession(), model.FeaturedUpdateRequest{ID: "featured:ghost", IsHighlight: true})
	assert.ErrorIs(t, err, ErrFeaturedNotFound)
}

func TestFeaturedRemove_MissingReportedBeforeAuthorization(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestFeaturedService(nil, nil, nil, nil)

	err := svc.Remove(ctx, memberSession("user:m"), model.FeaturedRemoveRequest{ID: "featured:ghost"})
	assert.ErrorIs(t, err, ErrFeaturedNotFound)
}

func TestFeaturedRemove_NonAdminOnExisting_Forbidden(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	featuredRepo := &mockFeaturedRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.Featured, error) {
			return &model.Featured{ID: id}, nil
		},
	}
	svc := newTestFeaturedService(featuredRepo, nil, nil, nil)

	err := svc.Remove(ctx, memberSession("user:m"), model.FeaturedRemoveRequest{ID: "featured:1"})
	assert.ErrorIs(t, err, forbidden(""))
}
