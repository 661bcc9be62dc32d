// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate checks i against its validate tags.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return FieldErrors(fieldErrs)
		}

		return errors.WithStack(err)
	}

	return nil
}

// FieldErrors lists the fields that failed, e.g. "email: email, password: required".
type FieldErrors validator.ValidationErrors

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, err := range fe {
		parts = append(parts, err.Field()+": "+err.Tag())
	}

	return strings.Join(parts, ", ")
}
