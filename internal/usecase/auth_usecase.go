// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"authgate/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user together with a freshly issued token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup registers a new account and issues a token for it.
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)

	// Login verifies credentials and issues a fresh token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// GetProfile resolves the authenticated identity back to its stored user.
	GetProfile(ctx context.Context, identity entity.Identity) (*entity.User, error)
}
