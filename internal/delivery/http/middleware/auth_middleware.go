package middleware

import (
	"strings"

	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/repository"
	"taskman/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// identityContextKey is the echo.Context key holding the authenticated user.
const identityContextKey = "identity"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and resolves the current user from
// the store. Every failure mode maps to the same unauthorized error so a
// caller cannot probe which step rejected the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is not a bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized.WrapMessage("token validation failed")
		}

		// The token may outlive its user; the store is the authority.
		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			return domainerrors.ErrUnauthorized.WrapMessage("token subject no longer exists")
		}

		c.Set(identityContextKey, user)

		return next(c)
	}
}

// IdentityFromContext returns the authenticated user stored by Authenticate.
func IdentityFromContext(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(identityContextKey).(*entity.User)

	return user, ok
}
