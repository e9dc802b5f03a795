package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pixelforge/studio-api/internal/middleware"
	"github.com/pixelforge/studio-api/internal/model"
	"github.com/pixelforge/studio-api/internal/service"
)

// mockMediaRepo satisfies service.MediaRepository for end-to-end handler tests.
type mockMediaRepo struct {
	findByIDFunc  func(ctx context.Context, id string) (*model.Media, error)
	findByKeyFunc func(ctx context.Context, key string) (*model.Media, error)
	findAllFunc   func(ctx context.Context) ([]*model.Media, error)
	insertFunc    func(ctx context.Context, media *model.Media) error
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
	return nil
}

func newTestMediaHandler(repo *mockMediaRepo) *MediaHandler {
	if repo == nil {
		repo = &mockMediaRepo{}
	}
	svc := service.NewMediaService(repo, "pixelforge", "key-123", "secret-456", "studio")
	return NewMediaHandler(svc, zap.NewNop())
}

func withSession(r *http.Request, roles ...model.Role) *http.Request {
	session := &model.Session{UserID: "user:tester", UserEmail: "tester@studio.dev", UserRoles: roles}
	return r.WithContext(context.WithValue(r.Context(), middleware.SessionKey, session))
}

func TestMediaHandlerCreate_Returns201WithEnvelope(t *testing.T) {
	t.Parallel()

	h := newTestMediaHandler(nil)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/v1/media",
		strings.NewReader(`{"publicId":"studio/blog/cover","url":"https://cdn.example.com/cover.png"}`))
	h.Create(rec, withSession(r, model.RoleMember))

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["ok"])
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "studio/blog/cover", data["key"])
}

func TestMediaHandlerCreate_BadKey_Returns422(t *testing.T) {
	t.Parallel()

	h := newTestMediaHandler(nil)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/v1/media",
		strings.NewReader(`{"publicId":"not-a-key","url":"https://cdn.example.com/cover.png"}`))
	h.Create(rec, withSession(r, model.RoleMember))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body["errorCode"])
}

func TestMediaHandlerCreate_DuplicateKey_Returns409(t *testing.T) {
	t.Parallel()

	repo := &mockMediaRepo{
		findByKeyFunc: func(ctx context.Context, key string) (*model.Media, error) {
			return &model.Media{ID: "media:1", Key: key}, nil
		},
	}
	h := newTestMediaHandler(repo)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/v1/media",
		strings.NewReader(`{"publicId":"studio/blog/cover","url":"https://cdn.example.com/cover.png"}`))
	h.Create(rec, withSession(r, model.RoleMember))

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "MEDIA_KEY_EXISTS", body["errorCode"])
}

func TestMediaHandlerGet_Guest_Returns403(t *testing.T) {
	t.Parallel()

	h := newTestMediaHandler(nil)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/media", nil)
	h.Get(rec, withSession(r, model.RoleGuest))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "FORBIDDEN", body["errorCode"])
}

func TestMediaHandlerSign_AnonymousBody_Returns403(t *testing.T) {
	t.Parallel()

	h := newTestMediaHandler(nil)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/v1/media/sign",
		strings.NewReader(`{"publicId":"studio/blog/cover"}`))
	h.Sign(rec, r)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMediaHandlerSign_ReturnsTicket(t *testing.T) {
	t.Parallel()

	h := newTestMediaHandler(nil)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/v1/media/sign",
		strings.NewReader(`{"publicId":"studio/blog/cover"}`))
	h.Sign(rec, withSession(r, model.RoleMember))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pixelforge", data["cloudName"])
	assert.Equal(t, "key-123", data["apiKey"])
	assert.NotEmpty(t, data["signature"])
	// The secret itself never appears on the wire.
	assert.NotContains(t, rec.Body.String(), "secret-456")
}
