package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogapp/internal/config"
	"blogapp/internal/models"
	"blogapp/internal/service"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, name, email, passwordHash string) (*models.User, error) {
	args := m.Called(ctx, name, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) GetOwnedBlogIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func newGuard(t *testing.T, userRepo *mockUserRepository) (*AuthGuard, service.AuthService) {
	t.Helper()

	auth := service.NewAuthService(userRepo, &config.Config{
		JWTSecretKey:  "test-secret-key",
		TokenDuration: time.Hour,
	})

	return NewAuthGuard(auth, userRepo), auth
}

func recordingHandler(gotID *string, gotUser **models.User, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if id, ok := UserIDFromContext(r.Context()); ok {
			*gotID = id
		}
		if user, ok := UserFromContext(r.Context()); ok {
			*gotUser = user
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		guard, _ := newGuard(t, new(mockUserRepository))

		var called bool
		var gotID string
		var gotUser *models.User

		req := httptest.NewRequest(http.MethodGet, "/blogs/me", nil)
		rr := httptest.NewRecorder()

		guard.RequireAuth(recordingHandler(&gotID, &gotUser, &called)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Not authorized, no token")
		assert.False(t, called)
	})

	t.Run("garbage token", func(t *testing.T) {
		guard, _ := newGuard(t, new(mockUserRepository))

		var called bool
		var gotID string
		var gotUser *models.User

		req := httptest.NewRequest(http.MethodGet, "/blogs/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rr := httptest.NewRecorder()

		guard.RequireAuth(recordingHandler(&gotID, &gotUser, &called)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "token failed")
		assert.False(t, called)
	})

	t.Run("valid token attaches the resolved identity", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		guard, auth := newGuard(t, userRepo)

		token, err := auth.IssueToken("user-1")
		require.NoError(t, err)

		userRepo.On("GetUserByID", mock.Anything, "user-1").
			Return(&models.User{UserID: "user-1", Email: "a@x.com"}, nil)

		var called bool
		var gotID string
		var gotUser *models.User

		req := httptest.NewRequest(http.MethodGet, "/blogs/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		guard.RequireAuth(recordingHandler(&gotID, &gotUser, &called)).ServeHTTP(rr, req)

		assert.True(t, called)
		assert.Equal(t, "user-1", gotID)
		require.NotNil(t, gotUser)
		assert.Equal(t, "a@x.com", gotUser.Email)
	})

	t.Run("vanished identity still passes, with only the id attached", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		guard, auth := newGuard(t, userRepo)

		token, err := auth.IssueToken("user-1")
		require.NoError(t, err)

		userRepo.On("GetUserByID", mock.Anything, "user-1").
			Return(nil, models.ErrUserNotFound)

		var called bool
		var gotID string
		var gotUser *models.User

		req := httptest.NewRequest(http.MethodGet, "/blogs/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		guard.RequireAuth(recordingHandler(&gotID, &gotUser, &called)).ServeHTTP(rr, req)

		assert.True(t, called)
		assert.Equal(t, "user-1", gotID)
		assert.Nil(t, gotUser)
	})
}

func TestOptionalAuth(t *testing.T) {
	t.Run("anonymous request passes without identity", func(t *testing.T) {
		guard, _ := newGuard(t, new(mockUserRepository))

		var called bool
		var gotID string
		var gotUser *models.User

		req := httptest.NewRequest(http.MethodGet, "/blogs/some-id", nil)
		rr := httptest.NewRecorder()

		guard.OptionalAuth(recordingHandler(&gotID, &gotUser, &called)).ServeHTTP(rr, req)

		assert.True(t, called)
		assert.Empty(t, gotID)
	})

	t.Run("invalid token is ignored rather than rejected", func(t *testing.T) {
		guard, _ := newGuard(t, new(mockUserRepository))

		var called bool
		var gotID string
		var gotUser *models.User

		req := httptest.NewRequest(http.MethodGet, "/blogs/some-id", nil)
		req.Header.Set("Authorization", "Bearer junk")
		rr := httptest.NewRecorder()

		guard.OptionalAuth(recordingHandler(&gotID, &gotUser, &called)).ServeHTTP(rr, req)

		assert.True(t, called)
		assert.Empty(t, gotID)
	})

	t.Run("valid token attributes the viewer", func(t *testing.T) {
		guard, auth := newGuard(t, new(mockUserRepository))

		token, err := auth.IssueToken("user-2")
		require.NoError(t, err)

		var called bool
		var gotID string
		var gotUser *models.User

		req := httptest.NewRequest(http.MethodGet, "/blogs/some-id", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		guard.OptionalAuth(recordingHandler(&gotID, &gotUser, &called)).ServeHTTP(rr, req)

		assert.True(t, called)
		assert.Equal(t, "user-2", gotID)
	})
}
