// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"taskman/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the newly created user's public projection.
type SignupOutput struct {
	User *entity.User
}

// LoginOutput returns the generated session token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetMe(ctx context.Context, userID int64) (*entity.User, error)
}
