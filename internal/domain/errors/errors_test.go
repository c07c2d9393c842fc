package errors

import (
	"net/http"
	"testing"

	"authgate/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapMessage_PreservesClassification(t *testing.T) {
	err := ErrEmailTaken.WrapMessage("signup conflict")

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "EMAIL_TAKEN", appErr.ErrorCode())
	assert.Equal(t, "User with this email already exists", appErr.Message())
	assert.True(t, appErr.Operational())

	// The wrapped error still matches the sentinel.
	assert.True(t, errors.Is(err, ErrEmailTaken))
}

func TestNewInternalError_NotOperational(t *testing.T) {
	var appErr AppError
	require.ErrorAs(t, ErrTokenVerification.WrapMessage("decode blew up"), &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.False(t, appErr.Operational())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("Email must be a valid email address")

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "Email must be a valid email address", appErr.Message())
}
