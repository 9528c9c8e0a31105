package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo's Validator
// interface. Field errors are reported with json tag names so the
// messages match the request payload rather than the Go struct.
type CustomValidator struct {
	v *validator.Validate
}

// New builds the validator used by the HTTP layer.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{v: v}
}

// Validate checks the struct's validate tags.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
