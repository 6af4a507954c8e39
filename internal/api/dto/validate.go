package dto

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("password_strength", passwordStrength)
	return v
}

// passwordStrength requires at least one upper, one lower, one digit and one
// special character, mirroring the sign-up policy enforced for customers.
func passwordStrength(fl validator.FieldLevel) bool {
	var upper, lower, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// Validate checks struct tags and returns the first violation.
func Validate(v any) error {
	return validate.Struct(v)
}
