package auth

import (
	"strings"
	"testing"
	"time"

	"authgate/config"
	"authgate/internal/domain/entity"
	"authgate/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttl

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	identity := entity.Identity{UserID: 42, Email: "a@b.com"}

	token, err := svc.Issue(identity)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Round-trip: the verified identity equals the issued one.
	verified, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, identity, *verified)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// A negative TTL produces a token whose expiry has already elapsed.
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", -time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(entity.Identity{UserID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	verified, err := svc.Verify(token)
	assert.Nil(t, verified)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue(entity.Identity{UserID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	// Flip one character of the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	verified, err := svc.Verify(tampered)
	assert.Nil(t, verified)
	assert.True(t, errors.Is(err, service.ErrSignatureInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("issuer_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("different_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue(entity.Identity{UserID: 1, Email: "a@b.com"})
	require.NoError(t, err)

	verified, err := verifier.Verify(token)
	assert.Nil(t, verified)
	assert.True(t, errors.Is(err, service.ErrSignatureInvalid))
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	verified, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Nil(t, verified)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)

	// Unset TTL falls back to 24 hours.
	assert.Equal(t, 24*time.Hour, svc.TokenTTL())
}
