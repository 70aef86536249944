package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/repository"
	"taskman/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserServiceForTest(userRepo *mockUserRepository, hasher *mockPasswordHasher, tokenService *mockTokenService) usecase.UserUsecase {
	return &userService{
		txManager:    &fakeTransactionManager{userRepo: userRepo},
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       newDiscardLogger(),
	}
}

func TestUserService_Signup(t *testing.T) {
	t.Parallel()

	firstName := "Ada"

	t.Run("creates user with hashed password", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		srv := newUserServiceForTest(userRepo, hasher, new(mockTokenService))

		hasher.On("ValidatePasswordStrength", "Sup3rSecret").Return(nil)
		hasher.On("Hash", "Sup3rSecret").Return("$argon2id$...", nil)
		userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "ada@example.com" && u.PasswordHash == "$argon2id$..."
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 7
		}).Return(nil)

		out, err := srv.Signup(context.Background(), &usecase.SignupInput{
			Email:     "ada@example.com",
			Password:  "Sup3rSecret",
			FirstName: &firstName,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(7), out.User.ID)
		assert.Equal(t, "ada@example.com", out.User.Email)
		userRepo.AssertExpectations(t)
		hasher.AssertExpectations(t)
	})

	t.Run("rejects weak password before touching the store", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		srv := newUserServiceForTest(userRepo, hasher, new(mockTokenService))

		hasher.On("ValidatePasswordStrength", "short").Return(errors.New("password must be at least 8 characters long"))

		out, err := srv.Signup(context.Background(), &usecase.SignupInput{
			Email:    "ada@example.com",
			Password: "short",
		})

		require.Error(t, err)
		assert.Nil(t, out)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrValidationFailed.HTTPCode(), appErr.HTTPCode())
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("reports conflict on duplicate email", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		srv := newUserServiceForTest(userRepo, hasher, new(mockTokenService))

		hasher.On("ValidatePasswordStrength", "Sup3rSecret").Return(nil)
		hasher.On("Hash", "Sup3rSecret").Return("$argon2id$...", nil)
		userRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&entity.User{ID: 1, Email: "taken@example.com"}, nil)

		out, err := srv.Signup(context.Background(), &usecase.SignupInput{
			Email:    "taken@example.com",
			Password: "Sup3rSecret",
		})

		require.Error(t, err)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("constraint race still reports conflict", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		srv := newUserServiceForTest(userRepo, hasher, new(mockTokenService))

		// Pre-check misses; a concurrent signup wins the insert and the
		// unique constraint fires inside Create.
		hasher.On("ValidatePasswordStrength", "Sup3rSecret").Return(nil)
		hasher.On("Hash", "Sup3rSecret").Return("$argon2id$...", nil)
		userRepo.On("FindByEmail", mock.Anything, "raced@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(domainerrors.ErrEmailTaken.WrapMessage("email already exists"))

		out, err := srv.Signup(context.Background(), &usecase.SignupInput{
			Email:    "raced@example.com",
			Password: "Sup3rSecret",
		})

		require.Error(t, err)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	})

	t.Run("surfaces hashing failure as an internal error", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		srv := newUserServiceForTest(userRepo, hasher, new(mockTokenService))

		hasher.On("ValidatePasswordStrength", "Sup3rSecret").Return(nil)
		hasher.On("Hash", "Sup3rSecret").Return("", errors.New("entropy exhausted"))

		out, err := srv.Signup(context.Background(), &usecase.SignupInput{
			Email:    "ada@example.com",
			Password: "Sup3rSecret",
		})

		require.Error(t, err)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	})
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	storedUser := &entity.User{
		ID:           42,
		Email:        "ada@example.com",
		PasswordHash: "$argon2id$...",
	}

	t.Run("returns bearer token for valid credentials", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		tokenService := new(mockTokenService)
		srv := newUserServiceForTest(userRepo, hasher, tokenService)

		userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(storedUser, nil)
		hasher.On("Check", "Sup3rSecret", "$argon2id$...").Return(true)
		tokenService.On("Generate", int64(42), "ada@example.com").Return("signed-token", nil)

		out, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "ada@example.com",
			Password: "Sup3rSecret",
		})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", out.AccessToken)
		assert.Equal(t, "bearer", out.TokenType)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		srv := newUserServiceForTest(userRepo, hasher, new(mockTokenService))

		userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
		userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(storedUser, nil)
		hasher.On("Check", "wrong", "$argon2id$...").Return(false)

		_, unknownErr := srv.Login(context.Background(), &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
		_, wrongErr := srv.Login(context.Background(), &usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})

		require.Error(t, unknownErr)
		require.Error(t, wrongErr)
		assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	})

	t.Run("propagates token generation failure", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		hasher := new(mockPasswordHasher)
		tokenService := new(mockTokenService)
		srv := newUserServiceForTest(userRepo, hasher, tokenService)

		userRepo.On("FindByEmail", mock.Anything, "ada@example.com").Return(storedUser, nil)
		hasher.On("Check", "Sup3rSecret", "$argon2id$...").Return(true)
		tokenService.On("Generate", int64(42), "ada@example.com").Return("", errors.New("signing key unavailable"))

		out, err := srv.Login(context.Background(), &usecase.LoginInput{
			Email:    "ada@example.com",
			Password: "Sup3rSecret",
		})

		require.Error(t, err)
		assert.Nil(t, out)
	})
}

func TestUserService_GetMe(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored user", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		srv := newUserServiceForTest(userRepo, new(mockPasswordHasher), new(mockTokenService))

		userRepo.On("FindByID", mock.Anything, int64(42)).Return(&entity.User{ID: 42, Email: "ada@example.com"}, nil)

		user, err := srv.GetMe(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
	})

	t.Run("deleted user maps to unauthorized", func(t *testing.T) {
		t.Parallel()

		userRepo := new(mockUserRepository)
		srv := newUserServiceForTest(userRepo, new(mockPasswordHasher), new(mockTokenService))

		userRepo.On("FindByID", mock.Anything, int64(42)).Return(nil, repository.ErrUserNotFound)

		user, err := srv.GetMe(context.Background(), 42)

		require.Error(t, err)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
