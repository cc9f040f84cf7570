// Package validation adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request DTOs.
package validation

import (
	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

// New returns a Validator backed by a fresh validator.Validate instance.
func New() *Validator {
	return &Validator{v: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}
