package contextutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validator returns the shared go-playground validator instance
func Validator() *validator.Validate {
	return validate
}

// IsValidVerb checks that a base verb is a single, non-empty, lowercase alphabetic word
func IsValidVerb(verb string) bool {
	return validate.Var(verb, "required,lowercase,alpha") == nil
}

// ValidateStruct runs struct-tag validation and converts failures into a VALIDATION_FAILED error
func ValidateStruct(v interface{}, context string) error {
	if err := validate.Struct(v); err != nil {
		return WrapError(NewAppErrorWithCause(ErrorCodeValidationFailed, SeverityFatal, "Validation failed", err.Error(), err), context)
	}
	return nil
}
