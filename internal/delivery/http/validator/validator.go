// Package validator adapts go-playground validation to the echo interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator implements echo.Validator on top of go-playground.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the request validator.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks struct tags and maps failures to a 400 response.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
