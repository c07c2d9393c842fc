// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"authgate/config"
	"authgate/internal/domain/entity"
	"authgate/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are HS256-signed with a single symmetric secret shared by issuer and verifier.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService. An empty secret is a
// configuration error that must abort startup, never surface per request.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		ttl:    cfg.TokenTTL(),
	}, nil
}

// Issue signs the identity together with issued-at and expiry claims.
func (s *jwtService) Issue(identity entity.Identity) (string, error) {
	now := time.Now()
	claims := service.Claims{
		UserID: identity.UserID,
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify recomputes the signature and checks expiry, returning the embedded
// identity unchanged. Failures are classified into the service-level token
// error taxonomy; anything else is passed through for the caller to treat as
// a system fault.
func (s *jwtService) Verify(tokenString string) (*entity.Identity, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, errors.Wrap(service.ErrTokenMalformed, err.Error())
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, errors.Wrap(service.ErrTokenExpired, err.Error())
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, errors.Wrap(service.ErrSignatureInvalid, err.Error())
		default:
			return nil, errors.Wrap(err, "failed to verify token")
		}
	}

	return &entity.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

// TokenTTL returns the configured token time-to-live.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
