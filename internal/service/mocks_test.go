package service

import (
	"context"

	"github.com/pixelforge/studio-api/internal/database"
	"github.com/pixelforge/studio-api/internal/model"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockUserRepo struct {
	findByIDFunc         func(ctx context.Context, id string) (*model.User, error)
	findByEmailFunc      func(ctx context.Context, email string) (*model.User, error)
	findAllFunc          func(ctx context.Context) ([]*model.User, error)
	findAllByIDsFunc     func(ctx context.Context, ids []string) ([]*model.User, error)
	findAllPaginatedFunc func(ctx context.Context, page, limit int) (*model.Paginated[*model.User], error)
	updateByIDFunc       func(ctx context.Context, id string, patch map[string]interface{}) error
	batchSetTeamCalls    []batchSetTeamCall
	batchDetachTeamCalls []string
	batchRemoveCalls     []string
}

type batchSetTeamCall struct {
	userID string
	teamID *string
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) FindAllByIDs(ctx context.Context, ids []string) ([]*model.User, error) {
	if m.findAllByIDsFunc != nil {
		return m.findAllByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepo) FindAllPaginated(ctx context.Context, page, limit int) (*model.Paginated[*model.User], error) {
	if m.findAllPaginatedFunc != nil {
		return m.findAllPaginatedFunc(ctx, page, limit)
	}
	return &model.Paginated[*model.User]{Page: page, Limit: limit}, nil
}

func (m *mockUserRepo) UpdateByID(ctx context.Context, id string, patch map[string]interface{}) error {
	if m.updateByIDFunc != nil {
		return m.updateByIDFunc(ctx, id, patch)
	}
	return nil
}

func (m *mockUserRepo) BatchSetTeam(b *database.AtomicBatch, userID string, teamID *string) {
	m.batchSetTeamCalls = append(m.batchSetTeamCalls, batchSetTeamCall{userID: userID, teamID: teamID})
	b.Add("UPDATE type::record($user) SET team_id = $team", map[string]interface{}{"user": userID, "team": teamID})
}

func (m *mockUserRepo) BatchDetachTeam(b *database.AtomicBatch, teamID string) {
	m.batchDetachTeamCalls = append(m.batchDetachTeamCalls, teamID)
	b.Add("UPDATE user SET team_id = NONE WHERE team_id = $team", map[string]interface{}{"team": teamID})
}

func (m *mockUserRepo) BatchRemove(b *database.AtomicBatch, userID string) {
	m.batchRemoveCalls = append(m.batchRemoveCalls, userID)
	b.Add("DELETE type::record($user)", map[string]interface{}{"user": userID})
}

type mockTeamRepo struct {
	findByIDFunc         func(ctx context.Context, id string) (*model.Team, error)
	findByNameFunc       func(ctx context.Context, name string) (*model.Team, error)
	findAllFunc          func(ctx context.Context) ([]*model.Team, error)
	insertFunc           func(ctx context.Context, team *model.Team) error
	updateByIDFunc       func(ctx context.Context, id string, patch map[string]interface{}) error
	batchAddMemberCalls  []memberCall
	batchPullMemberCalls []memberCall
	batchRemoveCalls     []string
}

type memberCall struct {
	teamID string
	userID string
}

func (m *mockTeamRepo) FindByID(ctx context.Context, id string) (*model.Team, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTeamRepo) FindByName(ctx context.Context, name string) (*model.Team, error) {
	if m.findByNameFunc != nil {
		return m.findByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockTeamRepo) FindAll(ctx context.Context) ([]*model.Team, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTeamRepo) Insert(ctx context.Context, team *model.Team) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, team)
	}
	team.ID = "team:created"
	return nil
}

func (m *mockTeamRepo) UpdateByID(ctx context.Context, id string, patch map[string]interface{}) error {
	if m.updateByIDFunc != nil {
		return m.updateByIDFunc(ctx, id, patch)
	}
	return nil
}

func (m *mockTeamRepo) BatchAddMember(b *database.AtomicBatch, teamID, userID string) {
	m.batchAddMemberCalls = append(m.batchAddMemberCalls, memberCall{teamID: teamID, userID: userID})
	b.Add("UPDATE type::record($team) SET member_ids += $member", map[string]interface{}{"team": teamID, "member": userID})
}

func (m *mockTeamRepo) BatchPullMember(b *database.AtomicBatch, teamID, userID string) {
	m.batchPullMemberCalls = append(m.batchPullMemberCalls, memberCall{teamID: teamID, userID: userID})
	b.Add("UPDATE type::record($team) SET member_ids -= $member", map[string]interface{}{"team": teamID, "member": userID})
}

func (m *mockTeamRepo) BatchRemove(b *database.AtomicBatch, teamID string) {
	m.batchRemoveCalls = append(m.batchRemoveCalls, teamID)
	b.Add("DELETE type::record($team)", map[string]interface{}{"team": teamID})
}

type mockBlogRepo struct {
	findByIDFunc        func(ctx context.Context, id string) (*model.Blog, error)
	findBySlugFunc      func(ctx context.Context, slug string) (*model.Blog, error)
	findAllFunc         func(ctx context.Context) ([]*model.Blog, error)
	findAllByAuthorFunc func(ctx context.Context, authorID string) ([]*model.Blog, error)
	findAllByIDsFunc    func(ctx context.Context, ids []string) ([]*model.Blog, error)
	insertFunc          func(ctx context.Context, blog *model.Blog) error
	updateByIDFunc      func(ctx context.Context, id string, patch map[string]interface{}) error
	removeByIDFunc      func(ctx context.Context, id string) error
}

func (m *mockBlogRepo) FindByID(ctx context.Context, id string) (*model.Blog, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBlogRepo) FindBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	if m.findBySlugFunc != nil {
		return m.findBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockBlogRepo) FindAll(ctx context.Context) ([]*model.Blog, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockBlogRepo) FindAllByAuthor(ctx context.Context, authorID string) ([]*model.Blog, error) {
	if m.findAllByAuthorFunc != nil {
		return m.findAllByAuthorFunc(ctx, authorID)
	}
	return nil, nil
}

func (m *mockBlogRepo) FindAllByIDs(ctx context.Context, ids []string) ([]*model.Blog, error) {
	if m.findAllByIDsFunc != nil {
		return m.findAllByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockBlogRepo) Insert(ctx context.Context, blog *model.Blog) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, blog)
	}
	blog.ID = "blog:created"
	return nil
}

func (m *mockBlogRepo) UpdateByID(ctx context.Context, id string, patch map[string]interface{}) error {
	if m.updateByIDFunc != nil {
		return m.updateByIDFunc(ctx, id, patch)
	}
	return nil
}

func (m *mockBlogRepo) RemoveByID(ctx context.Context, id string) error {
	if m.removeByIDFunc != nil {
		return m.removeByIDFunc(ctx, id)
	}
	return nil
}

type mockProjectRepo struct {
	findByIDFunc        func(ctx context.Context, id string) (*model.Project, error)
	findAllFunc         func(ctx context.Context, portfolio *model.Portfolio) ([]*model.Project, error)
	findAllByAuthorFunc func(ctx context.Context, authorID string, portfolio *model.Portfolio) ([]*model.Project, error)
	findAllByIDsFunc    func(ctx context.Context, ids []string) ([]*model.Project, error)
	insertFunc          func(ctx context.Context, project *model.Project) error
	updateByIDFunc      func(ctx context.Context, id string, patch map[string]interface{}) error
	removeByIDFunc      func(ctx context.Context, id string) error
}

func (m *mockProjectRepo) FindByID(ctx context.Context, id string) (*model.Project, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepo) FindAll(ctx context.Context, portfolio *model.Portfolio) ([]*model.Project, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx, portfolio)
	}
	return nil, nil
}

func (m *mockProjectRepo) FindAllByAuthor(ctx context.Context, authorID string, portfolio *model.Portfolio) ([]*model.Project, error) {
	if m.findAllByAuthorFunc != nil {
		return m.findAllByAuthorFunc(ctx, authorID, portfolio)
	}
	return nil, nil
}

func (m *mockProjectRepo) FindAllByIDs(ctx context.Context, ids []string) ([]*model.Project, error) {
	if m.findAllByIDsFunc != nil {
		return m.findAllByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockProjectRepo) Insert(ctx context.Context, project *model.Project) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, project)
	}
	project.ID = "project:created"
	return nil
}

func (m *mockProjectRepo) UpdateByID(ctx context.Context, id string, patch map[string]interface{}) error {
	if m.updateByIDFunc != nil {
		return m.updateByIDFunc(ctx, id, patch)
	}
	return nil
}

func (m *mockProjectRepo) RemoveByID(ctx context.Context, id string) error {
	if m.removeByIDFunc != nil {
		return m.removeByIDFunc(ctx, id)
	}
	return nil
}

type mockFeaturedRepo struct {
	findByIDFunc           func(ctx context.Context, id string) (*model.Featured, error)
	findOneByContentIDFunc func(ctx context.Context, contentID string) (*model.Featured, error)
	findAllFunc            func(ctx context.Context) ([]*model.Featured, error)
	findAllByTypeFunc      func(ctx context.Context, contentType model.FeaturedType) ([]*model.Featured, error)
	findAllHighlightFunc   func(ctx context.Context) ([]*model.Featured, error)
	insertFunc             func(ctx context.Context, featured *model.Featured) error
	updateHighlightFunc    func(ctx context.Context, id string, isHighlight bool) error
	removeByIDFunc         func(ctx context.Context, id string) error
	insertCount            int
}

func (m *mockFeaturedRepo) FindByID(ctx context.Context, id string) (*model.Featured, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockFeaturedRepo) FindOneByContentID(ctx context.Context, contentID string) (*model.Featured, error) {
	if m.findOneByContentIDFunc != nil {
		return m.findOneByContentIDFunc(ctx, contentID)
	}
	return nil, nil
}

func (m *mockFeaturedRepo) FindAll(ctx context.Context) ([]*model.Featured, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockFeaturedRepo) FindAllByType(ctx context.Context, contentType model.FeaturedType) ([]*model.Featured, error) {
	if m.findAllByTypeFunc != nil {
		return m.findAllByTypeFunc(ctx, contentType)
	}
	return nil, nil
}

func (m *mockFeaturedRepo) FindAllHighlight(ctx context.Context) ([]*model.Featured, error) {
	if m.findAllHighlightFunc != nil {
		return m.findAllHighlightFunc(ctx)
	}
	return nil, nil
}

func (m *mockFeaturedRepo) Insert(ctx context.Context, featured *model.Featured) error {
	m.insertCount++
	if m.insertFunc != nil {
		return m.insertFunc(ctx, featured)
	}
	featured.ID = "featured:created"
	return nil
}

func (m *mockFeaturedRepo) UpdateHighlight(ctx context.Context, id string, isHighlight bool) error {
	if m.updateHighlightFunc != nil {
		return m.updateHighlightFunc(ctx, id, isHighlight)
	}
	return nil
}

func (m *mockFeaturedRepo) RemoveByID(ctx context.Context, id string) error {
	if m.removeByIDFunc != nil {
		return m.removeByIDFunc(ctx, id)
	}
	return nil
}

type mockMediaRepo struct {
	findByIDFunc   func(ctx context.Context, id string) (*model.Media, error)
	findByKeyFunc  func(ctx context.Context, key string) (*model.Media, error)
	findAllFunc    func(ctx context.Context) ([]*model.Media, error)
	insertFunc     func(ctx context.Context, media *model.Media) error
	removeByIDFunc func(ctx context.Context, id string) error
}

func (m *mockMediaRepo) FindByID(ctx context.Context, id string) (*model.Media, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMediaRepo) FindByKey(ctx context.Context, key string) (*model.Media, error) {
	if m.findByKeyFunc != nil {
		return m.findByKeyFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockMediaRepo) FindAll(ctx context.Context) ([]*model.Media, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockMediaRepo) Insert(ctx context.Context, media *model.Media) error {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, media)
	}
	media.ID = "media:created"
	return nil
}

func (m *mockMediaRepo) RemoveByID(ctx context.Context, id string) error {
	if m.removeByIDFunc != nil {
		return m.removeByIDFunc(ctx, id)
	}
	return nil
}

// mockDB records every Execute call so tests can assert on transaction
// composition.
type mockDB struct {
	executeFunc   func(ctx context.Context, query string, vars map[string]interface{}) error
	executedQuery string
	executedVars  map[string]interface{}
	executeCalls  int
}

func (m *mockDB) Connect(ctx context.Context) error { return nil }
func (m *mockDB) Close() error                      { return nil }
func (m *mockDB) Ping(ctx context.Context) error    { return nil }

func (m *mockDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	return nil, nil
}

func (m *mockDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	return nil, database.ErrNotFound
}

func (m *mockDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	m.executeCalls++
	m.executedQuery = query
	m.executedVars = vars
	if m.executeFunc != nil {
		return m.executeFunc(ctx, query, vars)
	}
	return nil
}

// ============================================================================
// Session fixtures
// ============================================================================

func adminSession() *model.Session {
	return &model.Session{UserID: "user:admin", UserEmail: "admin@studio.dev", UserRoles: []model.Role{model.RoleAdmin}}
}

func memberSession(id string) *model.Session {
	return &model.Session{UserID: id, UserEmail: "member@studio.dev", UserRoles: []model.Role{model.RoleMember}}
}

func guestSession() *model.Session {
	return &model.Session{UserID: "user:guest", UserEmail: "guest@studio.dev", UserRoles: []model.Role{model.RoleGuest}}
}
