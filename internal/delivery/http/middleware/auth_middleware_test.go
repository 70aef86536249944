package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/repository"
	"taskman/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	claims *service.Claims
	err    error
}

func (s *stubTokenService) Generate(userID int64, email string) (string, error) {
	return "", nil
}

func (s *stubTokenService) Validate(tokenString string) (*service.Claims, error) {
	return s.claims, s.err
}

type stubUserRepo struct {
	user *entity.User
	err  error
}

func (s *stubUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return s.user, s.err
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.user, s.err
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	return nil
}

func runAuthenticate(t *testing.T, m *AuthMiddleware, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	return c, m.Authenticate(next)(c)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	claims := &service.Claims{UserID: 42}
	storedUser := &entity.User{ID: 42, Email: "ada@example.com"}

	t.Run("resolves the user and stores the identity", func(t *testing.T) {
		t.Parallel()

		m := NewAuthMiddleware(
			&stubTokenService{claims: claims},
			&stubUserRepo{user: storedUser},
		)

		c, err := runAuthenticate(t, m, "Bearer good-token")

		require.NoError(t, err)

		identity, ok := IdentityFromContext(c)
		require.True(t, ok)
		assert.Equal(t, int64(42), identity.ID)
	})

	t.Run("every failure mode is the same unauthorized error", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name   string
			m      *AuthMiddleware
			header string
		}{
			{
				name:   "missing header",
				m:      NewAuthMiddleware(&stubTokenService{claims: claims}, &stubUserRepo{user: storedUser}),
				header: "",
			},
			{
				name:   "not a bearer token",
				m:      NewAuthMiddleware(&stubTokenService{claims: claims}, &stubUserRepo{user: storedUser}),
				header: "Basic dXNlcjpwYXNz",
			},
			{
				name:   "empty bearer token",
				m:      NewAuthMiddleware(&stubTokenService{claims: claims}, &stubUserRepo{user: storedUser}),
				header: "Bearer ",
			},
			{
				name:   "token validation fails",
				m:      NewAuthMiddleware(&stubTokenService{err: service.ErrInvalidToken}, &stubUserRepo{user: storedUser}),
				header: "Bearer stale-token",
			},
			{
				name:   "token subject no longer exists",
				m:      NewAuthMiddleware(&stubTokenService{claims: claims}, &stubUserRepo{err: repository.ErrUserNotFound}),
				header: "Bearer orphan-token",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				c, err := runAuthenticate(t, tc.m, tc.header)

				require.Error(t, err)
				assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

				_, ok := IdentityFromContext(c)
				assert.False(t, ok)
			})
		}
	})
}
