package impl

import (
	"context"

	"taskman/internal/domain/entity"
	"taskman/internal/domain/repository"
	"taskman/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

type mockTaskRepository struct {
	mock.Mock
}

func (m *mockTaskRepository) FindByID(ctx context.Context, id int64) (*entity.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Task), args.Error(1)
}

func (m *mockTaskRepository) ListByOwner(ctx context.Context, ownerID int64, skip, limit int) ([]*entity.Task, error) {
	args := m.Called(ctx, ownerID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Task), args.Error(1)
}

func (m *mockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	args := m.Called(ctx, task)

	return args.Error(0)
}

func (m *mockTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	args := m.Called(ctx, task)

	return args.Error(0)
}

func (m *mockTaskRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

func (m *mockPasswordHasher) ValidatePasswordStrength(password string) error {
	args := m.Called(password)

	return args.Error(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Generate(userID int64, email string) (string, error) {
	args := m.Called(userID, email)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

// fakeTransactionManager runs the unit of work directly against the mocks.
type fakeTransactionManager struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
}

func (f *fakeTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&fakeRepositoryFactory{userRepo: f.userRepo, taskRepo: f.taskRepo})
}

type fakeRepositoryFactory struct {
	userRepo repository.UserRepository
	taskRepo repository.TaskRepository
}

func (f *fakeRepositoryFactory) UserRepo() repository.UserRepository {
	return f.userRepo
}

func (f *fakeRepositoryFactory) TaskRepo() repository.TaskRepository {
	return f.taskRepo
}
