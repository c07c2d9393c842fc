// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Signup registers a new account. The existence pre-check and the insert run
// in one transaction; the storage unique constraint remains the authoritative
// guard, and a violation there resolves to the same conflict error.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	srv.logger.Info("Starting signup", slog.String("email", input.Email))

	// Hash before entering the transaction (bcrypt is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrEmailTaken.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing email")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.logger.Warn("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.Issue(newUser.Identity())
	if err != nil {
		srv.logger.Error("Failed to issue token during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token during signup")
	}

	srv.logger.Debug("Signup completed", slog.Int64("userID", newUser.ID))

	return &usecase.AuthOutput{User: newUser, Token: token}, nil
}

// Login verifies credentials and issues a fresh token. An unknown email and a
// wrong password collapse into the identical error so the response carries no
// account-enumeration signal.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.logger.Debug("Starting login", slog.String("email", input.Email))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, findErr := repoFactory.UserRepo().FindByEmail(ctx, input.Email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
			}

			return errors.Wrap(findErr, "failed to find user by email")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.logger.Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(user.Identity())
	if err != nil {
		srv.logger.Error("Failed to issue token during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token during login")
	}

	srv.logger.Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// GetProfile resolves the token-embedded identity back to its stored user.
// The identity may outlive the account, so a missing user is a 404 here.
func (srv *authService) GetProfile(ctx context.Context, identity entity.Identity) (*entity.User, error) {
	srv.logger.Debug("Getting profile", slog.Int64("userID", identity.UserID))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, findErr := repoFactory.UserRepo().FindByID(ctx, identity.UserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
			}

			return errors.Wrap(findErr, "failed to find user by id")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.logger.Warn("Profile lookup failed", slog.Int64("userID", identity.UserID), slog.Any("error", err))

		return nil, err
	}

	return user, nil
}
