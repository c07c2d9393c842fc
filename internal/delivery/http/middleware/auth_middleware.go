// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"strings"

	deliverycontext "authgate/internal/delivery/context"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware guards routes behind JWT access-token authentication.
type AuthMiddleware struct {
	tokenService service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate validates the bearer token and attaches the verified identity
// to the request context. A missing token is unauthorized, a token that fails
// verification for a known reason is forbidden, and anything else surfaces as
// an internal error.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractBearerToken(c.Request().Header.Get("Authorization"))
		if tokenString == "" {
			return domainerrors.ErrTokenMissing.WrapMessage("no bearer token in request")
		}

		identity, err := m.tokenService.Verify(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired),
				errors.Is(err, service.ErrSignatureInvalid),
				errors.Is(err, service.ErrTokenMalformed):
				return domainerrors.ErrTokenInvalid.WrapMessage("token verification rejected")
			default:
				return domainerrors.ErrTokenVerification.WrapMessage("token verification errored")
			}
		}

		ctx := deliverycontext.WithIdentity(c.Request().Context(), *identity)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// extractBearerToken pulls the token out of an "Authorization: Bearer <token>"
// header value. It returns an empty string when the header is absent or not in
// bearer form.
func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header {
		return ""
	}

	return strings.TrimSpace(token)
}
