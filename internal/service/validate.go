package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/msomdec/board/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// check validates in against its struct tags and reports the first failed
// field as ErrInvalidInput.
func check(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate: %w", err)
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, describe(verrs[0]))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be %s characters or fewer", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "gt":
		return field + " must be positive"
	default:
		return field + " is invalid"
	}
}
