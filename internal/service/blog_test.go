package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelforge/studio-api/internal/database"
	"github.com/pixelforge/studio-api/internal/model"
)

func newTestBlogService(blogRepo *mockBlogRepo, userRepo *mockUserRepo) *BlogService {
	if blogRepo == nil {
		blogRepo = &mockBlogRepo{}
	}
	if userRepo == nil {
		userRepo = &mockUserRepo{}
	}
	return NewBlogService(blogRepo, userRepo)
}

func TestBlogGet_All_ResolvesAuthorNames(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	blogRepo := &mockBlogRepo{
		findAllFunc: func(ctx context.Context) ([]*model.Blog, error) {
			return []*model.Blog{
				{ID: "blog:1", Title: "Shaders", Slug: "shaders", AuthorID: "user:1", CollaboratorIDs: []string{"user:2"}},
				{ID: "blog:2", Title: "Lost", Slug: "lost", AuthorID: "user:gone"},
			}, nil
		},
	}
	userRepo := &mockUserRepo{
		findAllByIDsFunc: func(ctx context.Context, ids []string) ([]*model.User, error) {
			return []*model.User{
				{ID: "user:1", Name: "Mira"},
				{ID: "user:2", Name: "Rafi"},
			}, nil
		},
	}
	svc := newTestBlogService(blogRepo, userRepo)

	result, err := svc.Get(ctx, nil, model.BlogGetRequest{Target: model.BlogGetAll})
	require.NoError(t, err)

	lists, ok := result.([]model.BlogListExport)
	require.True(t, ok)
	require.Len(t, lists, 2)
	assert.Equal(t, "Mira", lists[0].Author.Name)
	require.Len(t, lists[0].Collaborators, 1)
	assert.Equal(t, "Rafi", lists[0].Collaborators[0].Name)
	// A deleted author never breaks the listing.
	assert.Equal(t, "Unknown", lists[1].Author.Name)
}

func TestBlogGet_My_Anonymous_Forbidden(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestBlogService(nil, nil)

	_, err := svc.Get(ctx, nil, model.BlogGetRequest{Target: model.BlogGetMy})
	assert.ErrorIs(t, err, forbidden(""))
}

func TestBlogGet_BySlug_Missing_ReturnsSlugNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestBlogService(nil, nil)

	_, err := svc.Get(ctx, nil, model.BlogGetRequest{Target: model.BlogGetBySlug, Slug: "ghost-post"})
	assert.ErrorIs(t, err, ErrSlugNotFound)
}

func TestBlogGet_BySlug_IncludesBody(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	blogRepo := &mockBlogRepo{
		findBySlugFunc: func(ctx context.Context, slug string) (*model.Blog, error) {
			return &model.Blog{ID: "blog:1", Title: "Shaders", Slug: slug, Content: "full body", AuthorID: "user:1"}, nil
		},
	}
	userRepo := &mockUserRepo{
		findAllByIDsFunc: func(ctx context.Context, ids []string) ([]*model.User, error) {
			return []*model.User{{ID: "user:1", Name: "Mira"}}, nil
		},
	}
	svc := newTestBlogService(blogRepo, userRepo)

	result, err := svc.Get(ctx, nil, model.BlogGetRequest{Target: model.BlogGetBySlug, Slug: "shaders"})
	require.NoError(t, err)

	export, ok := result.(*model.BlogExport)
	require.True(t, ok)
	assert.Equal(t, "full body", export.Content)
	assert.Equal(t, "Mira", export.Author.Name)
}

func TestBlogCreate_Guest_Forbidden(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestBlogService(nil, nil)

	_, err := svc.Create(ctx, guestSession(), model.BlogCreateRequest{Title: "x", Slug: "x", Content: "y"})
	assert.ErrorIs(t, err, forbidden(""))
}

func TestBlogCreate_SlugTaken_ReturnsSlugInUse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	blogRepo := &mockBlogRepo{
		findBySlugFunc: func(ctx context.Context, slug string) (*model.Blog, error) {
			return &model.Blog{ID: "blog:1", Slug: slug}, nil
		},
	}
	svc := newTestBlogService(blogRepo, nil)

	_, err := svc.Create(ctx, memberSession("user:m"), model.BlogCreateRequest{Title: "x", Slug: "taken", Content: "y"})
	assert.ErrorIs(t, err, ErrSlugInUse)
}

func TestBlogCreate_LostRace_UniqueIndexStillReported(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	blogRepo := &mockBlogRepo{
		insertFunc: func(ctx context.Context, blog *model.Blog) error {
			return database.ErrDuplicate
		},
	}
	svc := newTestBlogService(blogRepo, nil)

	_, err := svc.Create(ctx, memberSession("user:m"), model.BlogCreateRequest{Title: "x", Slug: "raced", Content: "y"})
	assert.ErrorIs(t, err, ErrSlugInUse)
}

func TestBlogCreate_AuthorIsSessionUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var inserted *model.Blog
	blogRepo := &mockBlogRepo{
		insertFunc: func(ctx context.Context, blog *model.Blog) error {
			blog.ID = "blog:created"
			inserted = blog
			return nil
		},
	}
	userRepo := &mockUserRepo{
		findAllByIDsFunc: func(ctx context.Context, ids []string) ([]*model.User, error) {
			return []*model.User{{ID: "user:author", Name: "Mira"}}, nil
		},
	}
	svc := newTestBlogService(blogRepo, userRepo)

	export, err := svc.Create(ctx, memberSession("user:author"), model.BlogCreateRequest{
		Title:   "Shaders",
		Slug:    "shaders",
		Content: "body",
	})
	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.Equal(t, "user:author", inserted.AuthorID)
	assert.Equal(t, "Mira", export.Author.Name)
}

func TestBlogUpdate_NeverPatchesSlug(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var gotPatch map[string]interface{}
	blogRepo := &mockBlogRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.Blog, error) {
			return &model.Blog{ID: id, Slug: "original", AuthorID: "user:author"}, nil
		},
		updateByIDFunc: func(ctx context.Context, id string, patch map[string]interface{}) error {
			gotPatch = patch
			return nil
		},
	}
	svc := newTestBlogService(blogRepo, nil)

	title := "New Title"
	err := svc.Update(ctx, memberSession("user:author"), model.BlogUpdateRequest{ID: "blog:1", Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New Title", gotPatch["title"])
	assert.NotContains(t, gotPatch, "slug")
}

func TestBlogUpdate_NonAuthorNonAdmin_Forbidden(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	blogRepo := &mockBlogRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.Blog, error) {
			return &model.Blog{ID: id, AuthorID: "user:author"}, nil
		},
	}
	svc := newTestBlogService(blogRepo, nil)

	err := svc.Update(ctx, memberSession("user:other"), model.BlogUpdateRequest{ID: "blog:1"})
	assert.ErrorIs(t, err, forbidden(""))
}

func TestBlogRemove_AdminMayDeleteOthersArticle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	removed := ""
	blogRepo := &mockBlogRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.Blog, error) {
			return &model.Blog{ID: id, AuthorID: "user:author"}, nil
		},
		removeByIDFunc: func(ctx context.Context, id string) error {
			removed = id
			return nil
		},
	}
	svc := newTestBlogService(blogRepo, nil)

	err := svc.Remove(ctx, adminSession(), model.BlogRemoveRequest{ID: "blog:1"})
	require.NoError(t, err)
	assert.Equal(t, "blog:1", removed)
}

func TestBlogRemove_Missing_ReturnsBlogNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newTestBlogService(nil, nil)

	err := svc.Remove(ctx, adminSession(), model.BlogRemoveRequest{ID: "blog:ghost"})
	assert.ErrorIs(t, err, ErrBlogNotFound)
}
