package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/hrmslite/backend/internal/app/models/dto"
)

// BindingErrorDetail turns a gin binding failure into a field-level error
// detail. Validator errors report the first failing field; anything else
// (malformed JSON, wrong types) keeps the generic message.
func BindingErrorDetail(err error) *dto.ErrorDetail {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, formatValidationError(e)).
			WithField(e.Field())
	}

	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
		WithDetails(err.Error())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
