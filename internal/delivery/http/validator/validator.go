// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "eshop/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator validates request DTOs via their `validate` struct tags.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the Echo validator.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate implements echo.Validator. Failures surface as the domain's
// validation error so the error handler maps them to 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
