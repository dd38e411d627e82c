package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var profileNameValidRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9+_. -]*$`)

func nameValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return profileNameValidRegex.MatchString(val)
}

// ratioValidator accepts fractions in (0, 1].
func ratioValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(float64)
	if !ok {
		return false
	}

	return val > 0 && val <= 1
}
