package core

import (
	"errors"
	"regexp"

	"github.com/jellydator/validation"
)

// nonSpace is one character that is not whitespace in the Unicode sense,
// which also covers \v, the \x1c-\x1f separators and NEL. RE2's \S does not.
const nonSpace = `[^\s\v\x1c-\x1f\x85\p{Z}]`

var (
	emailPattern = regexp.MustCompile(`^` + nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+$`)
	phonePattern = regexp.MustCompile(`^[7-9][0-9]{9}$`)
)

var (
	emailRules = []validation.Rule{
		validation.Required,
		validation.Match(emailPattern).Error("must look like name@domain.tld"),
	}
	phoneRules = []validation.Rule{
		validation.Required,
		validation.Match(phonePattern).Error("must be 10 digits starting with 7, 8 or 9"),
	}
)

func IsValidEmail(email string) bool {
	return validation.Validate(email, emailRules...) == nil
}

func IsValidPhone(phone string) bool {
	return validation.Validate(phone, phoneRules...) == nil
}

func ValidateEmail(email string) error {
	if err := validation.Validate(email, emailRules...); err != nil {
		return &ValidationError{Field: "email", Err: err}
	}
	return nil
}

func ValidatePhone(phone string) error {
	if err := validation.Validate(phone, phoneRules...); err != nil {
		return &ValidationError{Field: "phone", Err: err}
	}
	return nil
}

func validateContactFields(email, phone string) error {
	return errors.Join(ValidateEmail(email), ValidatePhone(phone))
}
