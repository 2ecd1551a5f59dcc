package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateService checks catalog integrity before a service enters a
// draft: a service with a non-positive duration would produce
// nonsensical slots and is refused instead.
func ValidateService(svc Service) error {
	return validate.Struct(svc)
}
