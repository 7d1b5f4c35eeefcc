// Package validator adapts go-playground validation to echo's Validator
// interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a shared validate instance for request structs.
type Validator struct {
	validate *playground.Validate
}

// New creates a Validator with struct-tag validation enabled.
func New() *Validator {
	return &Validator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
