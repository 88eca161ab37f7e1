package handlers

import "github.com/go-playground/validator/v10"

// CustomValidator adapts go-playground/validator to echo.Validator
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the validator registered on the echo instance
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate checks the validate tags of a bound form
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
