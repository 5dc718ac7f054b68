package handler

import (
	"reflect"
	"strings"

	appErrors "apptracker/internal/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator checks `validate` struct tags for echo's Context.Validate.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return appErrors.Wrap(appErrors.ErrInvalidInput, "api.general.validationError", err)
	}
	return nil
}

// bind decodes the request body into req and validates it.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return appErrors.Wrap(appErrors.ErrInvalidInput, "api.general.validationError", err)
	}
	if c.Echo().Validator == nil {
		return nil
	}
	return c.Validate(req)
}
