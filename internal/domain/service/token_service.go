package service

import (
	"errors"
	"time"

	"authgate/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures are classified into exactly three kinds so that the
// transport layer can distinguish a bad credential from a system fault.
var (
	// ErrTokenExpired is returned when the token's expiry has elapsed.
	ErrTokenExpired = errors.New("token expired")

	// ErrSignatureInvalid is returned when the token's signature does not
	// verify against the configured secret.
	ErrSignatureInvalid = errors.New("token signature invalid")

	// ErrTokenMalformed is returned when the token cannot be decoded into
	// the expected shape at all.
	ErrTokenMalformed = errors.New("token malformed")
)

// Claims defines the signed payload of an access token: the identity plus
// the registered issued-at and expiry claims.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying access tokens.
// Implementations are pure functions of their inputs plus a fixed secret
// resolved once at startup; no call performs I/O.
type TokenService interface {
	// Issue serializes the identity with an expiry and signs it.
	Issue(identity entity.Identity) (string, error)

	// Verify checks the token's signature and expiry and returns the embedded
	// identity unchanged. Failures are one of ErrTokenExpired,
	// ErrSignatureInvalid or ErrTokenMalformed.
	Verify(token string) (*entity.Identity, error)

	// TokenTTL returns the configured token time-to-live.
	TokenTTL() time.Duration
}
