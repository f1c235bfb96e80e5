// Package validator registers the custom binding rules for request
// payloads.
package validator

import (
	"regexp"
	"unicode"

	validatorV10 "github.com/go-playground/validator/v10"
)

// Only A-Z letters with non-consecutive apostrophes and/or dashes.
var nameRegexp = regexp.MustCompile(`^([A-Za-z]+(['-][A-Za-z]+)*)$`)

// personName validates first/last name fields.
func personName(fl validatorV10.FieldLevel) bool {
	return nameRegexp.MatchString(fl.Field().String())
}

// userPassword requires at least one letter, one digit and one special
// character.
func userPassword(fl validatorV10.FieldLevel) bool {
	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	return hasLetter && hasDigit && hasSpecial
}

// RegisterCustomValidations attaches the custom rules to the binding
// validator engine.
func RegisterCustomValidations(v *validatorV10.Validate) error {
	if err := v.RegisterValidation("person_name", personName); err != nil {
		return err
	}
	return v.RegisterValidation("user_password", userPassword)
}
