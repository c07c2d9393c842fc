// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "authgate/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates bound request payloads using struct tags.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates a RequestValidator.
func New() *RequestValidator {
	return &RequestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Tag violations surface as a typed
// validation error so the error handler maps them to a 400 response.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.NewValidationError(validationMessage(err))
	}

	return nil
}

// validationMessage renders the first failed field into a client-facing
// message.
func validationMessage(err error) string {
	var fieldErrors playground.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "Invalid request payload"
	}

	first := fieldErrors[0]
	switch first.Tag() {
	case "required":
		return first.Field() + " is required"
	case "email":
		return first.Field() + " must be a valid email address"
	case "min":
		return first.Field() + " must be at least " + first.Param() + " characters"
	case "max":
		return first.Field() + " must be at most " + first.Param() + " characters"
	default:
		return first.Field() + " is invalid"
	}
}
