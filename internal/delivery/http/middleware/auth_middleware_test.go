package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"
	mockSvc "authgate/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func invokeAuthenticate(t *testing.T, tokenService service.TokenService, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewAuthMiddleware(tokenService)
	next := func(c echo.Context) error { return nil }

	return c, mw.Authenticate(next)(c)
}

func assertAppError(t *testing.T, err error, wantStatus int) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, wantStatus, appErr.HTTPCode())
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenService := &mockSvc.MockTokenService{}

	_, err := invokeAuthenticate(t, tokenService, "")

	assertAppError(t, err, http.StatusUnauthorized)
	tokenService.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestAuthenticate_NotBearerScheme(t *testing.T) {
	tokenService := &mockSvc.MockTokenService{}

	_, err := invokeAuthenticate(t, tokenService, "Basic dXNlcjpwYXNz")

	assertAppError(t, err, http.StatusUnauthorized)
	tokenService.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestAuthenticate_RejectedToken(t *testing.T) {
	// Every classified verification failure maps to the same forbidden error.
	rejections := map[string]error{
		"expired":           service.ErrTokenExpired,
		"bad signature":     service.ErrSignatureInvalid,
		"malformed":         service.ErrTokenMalformed,
		"wrapped rejection": errors.Wrap(service.ErrTokenExpired, "token is expired"),
	}

	for name, verifyErr := range rejections {
		t.Run(name, func(t *testing.T) {
			tokenService := &mockSvc.MockTokenService{}
			tokenService.On("Verify", "sometoken").Return(nil, verifyErr)

			_, err := invokeAuthenticate(t, tokenService, "Bearer sometoken")

			assertAppError(t, err, http.StatusForbidden)
		})
	}
}

func TestAuthenticate_UnclassifiedVerifyError(t *testing.T) {
	tokenService := &mockSvc.MockTokenService{}
	tokenService.On("Verify", "sometoken").Return(nil, errors.New("key store unreachable"))

	_, err := invokeAuthenticate(t, tokenService, "Bearer sometoken")

	assertAppError(t, err, http.StatusInternalServerError)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenService := &mockSvc.MockTokenService{}
	identity := entity.Identity{UserID: 7, Email: "a@b.com"}
	tokenService.On("Verify", "sometoken").Return(&identity, nil)

	c, err := invokeAuthenticate(t, tokenService, "Bearer sometoken")

	require.NoError(t, err)
	got, ok := deliverycontext.GetIdentity(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, identity, got)
}
