package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	mockRepo "authgate/internal/mocks/repository"
	mockSvc "authgate/internal/mocks/service"
	"authgate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	userRepo := &mockRepo.MockUserRepository{}
	hasher := &mockSvc.MockPasswordHasher{}
	tokenService := &mockSvc.MockTokenService{}
	txManager := &mockRepo.PassthroughTransactionManager{Users: userRepo}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(txManager, hasher, tokenService, logger)

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	deps := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:     "a@b.com",
		Password:  "secret1",
		FirstName: "A",
		LastName:  "B",
	}

	deps.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	deps.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	deps.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = 7
		}).
		Return(nil)
	deps.tokenService.On("Issue", entity.Identity{UserID: 7, Email: input.Email}).Return("signed.token", nil)

	output, err := deps.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, "signed.token", output.Token)
	deps.userRepo.AssertExpectations(t)
	deps.tokenService.AssertExpectations(t)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	deps := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:     "a@b.com",
		Password:  "secret1",
		FirstName: "A",
		LastName:  "B",
	}

	deps.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	deps.userRepo.On("FindByEmail", ctx, input.Email).
		Return(&entity.User{ID: 1, Email: input.Email}, nil)

	output, err := deps.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())

	// No write happens when the email is already present.
	deps.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Signup_UniqueConstraintRace(t *testing.T) {
	deps := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Email:     "a@b.com",
		Password:  "secret1",
		FirstName: "A",
		LastName:  "B",
	}

	// Pre-check misses, but the storage-level unique constraint fires on insert.
	deps.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	deps.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	deps.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailTaken.WrapMessage("email already exists"))

	output, err := deps.service.Signup(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.HTTPCode())
}

func TestAuthService_Login_Success(t *testing.T) {
	deps := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "a@b.com", Password: "secret1"}
	stored := &entity.User{ID: 7, Email: input.Email, PasswordHash: "hashed_password"}

	deps.userRepo.On("FindByEmail", ctx, input.Email).Return(stored, nil)
	deps.hasher.On("Check", input.Password, stored.PasswordHash).Return(true)
	deps.tokenService.On("Issue", stored.Identity()).Return("signed.token", nil)

	output, err := deps.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, stored, output.User)
	assert.Equal(t, "signed.token", output.Token)
}

func TestAuthService_Login_NoEnumerationSignal(t *testing.T) {
	deps := createTestAuthService(t)
	ctx := context.Background()

	// Unknown email.
	deps.userRepo.On("FindByEmail", ctx, "missing@b.com").Return(nil, repository.ErrUserNotFound)
	_, missingErr := deps.service.Login(ctx, &usecase.LoginInput{Email: "missing@b.com", Password: "secret1"})
	require.Error(t, missingErr)

	// Known email, wrong password.
	stored := &entity.User{ID: 7, Email: "a@b.com", PasswordHash: "hashed_password"}
	deps.userRepo.On("FindByEmail", ctx, stored.Email).Return(stored, nil)
	deps.hasher.On("Check", "wrong", stored.PasswordHash).Return(false)
	_, wrongErr := deps.service.Login(ctx, &usecase.LoginInput{Email: stored.Email, Password: "wrong"})
	require.Error(t, wrongErr)

	// Both failures collapse to the identical status and message.
	var missingApp, wrongApp domainerrors.AppError
	require.ErrorAs(t, missingErr, &missingApp)
	require.ErrorAs(t, wrongErr, &wrongApp)
	assert.Equal(t, 401, missingApp.HTTPCode())
	assert.Equal(t, missingApp.HTTPCode(), wrongApp.HTTPCode())
	assert.Equal(t, missingApp.Message(), wrongApp.Message())

	// Neither path issues a token.
	deps.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthService_GetProfile_Success(t *testing.T) {
	deps := createTestAuthService(t)

	ctx := context.Background()
	stored := &entity.User{ID: 7, Email: "a@b.com", PasswordHash: "hashed_password"}

	deps.userRepo.On("FindByID", ctx, int64(7)).Return(stored, nil)

	user, err := deps.service.GetProfile(ctx, entity.Identity{UserID: 7, Email: stored.Email})

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuthService_GetProfile_UserDeleted(t *testing.T) {
	deps := createTestAuthService(t)

	ctx := context.Background()

	// A valid token can outlive the account it was issued for.
	deps.userRepo.On("FindByID", ctx, int64(7)).Return(nil, repository.ErrUserNotFound)

	user, err := deps.service.GetProfile(ctx, entity.Identity{UserID: 7, Email: "a@b.com"})

	require.Error(t, err)
	assert.Nil(t, user)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.HTTPCode())
}
