// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"regexp"

	"pickup/internal/errors"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CustomValidator validates request DTOs with struct tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator with the custom tags used by the API.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// slug: lowercase store identifiers such as "noodle-bar".
	if err := validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	return errors.WithStack(cv.validate.Struct(i))
}

// Var validates a single value against a tag, e.g. Var(store, "required,slug").
func (cv *CustomValidator) Var(field any, tag string) error {
	return errors.WithStack(cv.validate.Var(field, tag))
}

// Details flattens validation failures into field -> failed tag, for error responses.
func Details(err error) map[string]string {
	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return nil
	}

	details := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details[fieldErr.Field()] = fieldErr.Tag()
	}

	return details
}
