package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mil-can/milcan-api/internal/api/middleware"
	"github.com/mil-can/milcan-api/internal/domain"
)

type stubUserService struct {
	user domain.User
}

func (s *stubUserService) GetUser(_ context.Context, _ uint) (domain.User, error) {
	return s.user, nil
}

type stubContentService struct {
	gotContent domain.Content
}

func (s *stubContentService) CreateContent(_ context.Context, content domain.Content) (domain.Content, error) {
	s.gotContent = content
	content.ID = 1

	return content, nil
}

func (s *stubContentService) GetContentByUser(_ context.Context, _ uint) ([]domain.Content, error) {
	return nil, nil
}

func (s *stubContentService) UpdateEngagement(_ context.Context, _, _ uint, _, _, _ *int) error {
	return nil
}

func newAuthedTestContext(t *testing.T, method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")
	ctx.Set(middleware.ContextKeyUserID, uint(1))

	return ctx, w
}

func TestHandleCreateContent_PassesEngagementCounters(t *testing.T) {
	svc := &stubContentService{}
	h := NewContentHandler(svc, &stubUserService{user: domain.User{ID: 1, Role: domain.RoleCreator}})

	body := `{"title":"Spotting deepfakes","category":"fact-checking","type":"video","views":1500,"likes":40,"comments":7}`
	ctx, w := newAuthedTestContext(t, http.MethodPost, "/api/v1/content", body)

	h.HandleCreateContent(ctx)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(1), svc.gotContent.UserID)
	assert.Equal(t, 1500, svc.gotContent.Views)
	assert.Equal(t, 40, svc.gotContent.Likes)
	assert.Equal(t, 7, svc.gotContent.Comments)
}

func TestHandleCreateContent_CountersDefaultToZero(t *testing.T) {
	svc := &stubContentService{}
	h := NewContentHandler(svc, &stubUserService{user: domain.User{ID: 1, Role: domain.RoleCreator}})

	body := `{"title":"Spotting deepfakes","category":"fact-checking","type":"video"}`
	ctx, w := newAuthedTestContext(t, http.MethodPost, "/api/v1/content", body)

	h.HandleCreateContent(ctx)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Zero(t, svc.gotContent.Views)
	assert.Zero(t, svc.gotContent.Likes)
	assert.Zero(t, svc.gotContent.Comments)
}

func TestHandleCreateContent_RejectsNegativeCounters(t *testing.T) {
	svc := &stubContentService{}
	h := NewContentHandler(svc, &stubUserService{user: domain.User{ID: 1, Role: domain.RoleCreator}})

	body := `{"title":"Spotting deepfakes","category":"fact-checking","type":"video","views":-1}`
	ctx, w := newAuthedTestContext(t, http.MethodPost, "/api/v1/content", body)

	h.HandleCreateContent(ctx)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
