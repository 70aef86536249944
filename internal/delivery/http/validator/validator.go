// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "taskman/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for use as echo.Echo.Validator.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the request validator used by the HTTP server.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and maps failures to the validation error
// so the error handler renders them as unprocessable entity.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
