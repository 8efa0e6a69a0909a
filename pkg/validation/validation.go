package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	dErrors "clientrec/pkg/domain-errors"
	s "clientrec/pkg/string"
)

// TagNotBlank rejects strings that are empty after trimming.
const TagNotBlank = "notblank"

var defaultValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation(TagNotBlank, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate validates a struct using the default validator and returns a domain error
// scoped to the first failing field.
func Validate(req any) error {
	if err := defaultValidator.Struct(req); err != nil {
		return dErrors.NewField(dErrors.CodeValidation, fieldName(err), ErrorMessage(err))
	}
	return nil
}

// String checks that v is a string satisfying tag and returns it.
// Non-string values are rejected before any tag runs.
func String(field string, v any, tag string) (string, error) {
	str, ok := v.(string)
	if !ok {
		return "", dErrors.NewField(dErrors.CodeValidation, field,
			fmt.Sprintf("%s must be a string, got %T", field, v))
	}
	if err := defaultValidator.Var(str, tag); err != nil {
		return "", dErrors.NewField(dErrors.CodeValidation, field, messageFor(field, err))
	}
	return str, nil
}

// ErrorMessage converts a validator error into a human-readable message
func ErrorMessage(err error) string {
	return messageFor("", err)
}

func fieldName(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return ""
	}
	fe := validationErrs[0]
	name := fe.Field()
	if name == "" {
		name = fe.StructField()
	}
	return s.ToSnakeCase(name)
}

func messageFor(field string, err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "invalid record"
	}

	fe := validationErrs[0]
	if field == "" {
		field = fieldName(err)
	}

	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case TagNotBlank:
		return fmt.Sprintf("%s must not be blank", field)
	default:
		if field == "" {
			return "invalid record"
		}
		return fmt.Sprintf("%s is invalid", field)
	}
}
