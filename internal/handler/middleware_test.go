package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/InkwellPress/blog-service/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfileService struct {
	profiles map[uuid.UUID]*model.Profile
}

func (s *stubProfileService) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	profile, ok := s.profiles[id]
	if !ok {
		return nil, service.ErrProfileNotFound
	}
	return profile, nil
}

func (s *stubProfileService) Update(ctx context.Context, id uuid.UUID, input dto.UpdateProfileDto) error {
	return nil
}

func (s *stubProfileService) CreateAuthor(ctx context.Context, input dto.CreateAuthorDto) (*model.Profile, error) {
	return nil, nil
}

func (s *stubProfileService) ListAuthors(ctx context.Context, limit int, offset int) ([]*model.Profile, int64, error) {
	return nil, 0, nil
}

func (s *stubProfileService) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	return nil
}

const testSecret = "test-secret"

func signToken(t *testing.T, id uuid.UUID) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": id.String()}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestAdminMiddleware(t *testing.T) {
	t.Setenv("ACCESS_SECRET", testSecret)
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	adminID := uuid.New()
	h := New(&service.Service{Profile: &stubProfileService{profiles: map[uuid.UUID]*model.Profile{
		userID:  {ID: userID, Role: model.RoleUser},
		adminID: {ID: adminID, Role: model.RoleAdmin},
	}}})

	handlerRan := false
	r := gin.New()
	r.POST("/guarded", h.adminMiddleware, func(c *gin.Context) {
		handlerRan = true
		c.JSON(http.StatusCreated, dto.SuccessResponse{Success: true})
	})

	cases := []struct {
		name    string
		token   string
		code    int
		wantRun bool
	}{
		{"no token", "", http.StatusUnauthorized, false},
		{"garbage token", "not.a.jwt", http.StatusUnauthorized, false},
		{"non-admin", signToken(t, userID), http.StatusForbidden, false},
		{"admin", signToken(t, adminID), http.StatusCreated, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handlerRan = false

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, tc.wantRun, handlerRan)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("ACCESS_SECRET", testSecret)
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	h := New(&service.Service{Profile: &stubProfileService{profiles: map[uuid.UUID]*model.Profile{
		userID: {ID: userID, Role: model.RoleUser},
	}}})

	r := gin.New()
	r.GET("/me", h.authMiddleware, func(c *gin.Context) {
		c.JSON(http.StatusOK, h.getProfileFromRequest(c))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, userID))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())

	// unknown profile id in a validly signed token is still rejected
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.New()))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
