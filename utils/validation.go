// File: utils/validation.go
package utils

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("hhmm", validateHHMM)
	validate.RegisterValidation("timezone_name", validateTimezone)
	validate.RegisterValidation("isodate", validateISODate)
}

// ValidateStruct runs the registered validator over s's `validate` tags.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateHHMM(fl validator.FieldLevel) bool {
	return hhmmPattern.MatchString(fl.Field().String())
}

func validateTimezone(fl validator.FieldLevel) bool {
	_, err := time.LoadLocation(fl.Field().String())
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
