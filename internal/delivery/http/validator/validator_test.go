package validator

import (
	"net/http"
	"testing"

	domainerrors "authgate/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=255"`
}

func TestValidate_OK(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&samplePayload{Email: "a@b.com", Password: "secret1"}))
}

func TestValidate_TagMessages(t *testing.T) {
	cases := map[string]struct {
		payload samplePayload
		want    string
	}{
		"missing email":  {samplePayload{Password: "secret1"}, "Email is required"},
		"bad email":      {samplePayload{Email: "nope", Password: "secret1"}, "Email must be a valid email address"},
		"short password": {samplePayload{Email: "a@b.com", Password: "123"}, "Password must be at least 6 characters"},
	}

	v := New()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := v.Validate(&tc.payload)

			require.Error(t, err)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
			assert.Equal(t, tc.want, appErr.Message())
		})
	}
}
