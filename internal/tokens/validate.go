package tokens

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	canonicalHexPattern = regexp.MustCompile(`^#[0-9A-F]{6}$`)
	cubicBezierPattern  = regexp.MustCompile(`^cubic-bezier\(\s*-?\d*\.?\d+\s*,\s*-?\d*\.?\d+\s*,\s*-?\d*\.?\d+\s*,\s*-?\d*\.?\d+\s*\)$`)
	namedEasings        = map[string]struct{}{"linear": {}, "ease": {}, "ease-in": {}, "ease-out": {}, "ease-in-out": {}}
)

// validatorInstance configures and returns the shared validator used for graph validation.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// Stored colors are always the normalised upper-case #RRGGBB form.
		_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
			return canonicalHexPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("easing", func(fl validator.FieldLevel) bool {
			return ValidEasing(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidEasing reports whether s is a supported CSS timing function.
func ValidEasing(s string) bool {
	if _, ok := namedEasings[s]; ok {
		return true
	}
	return cubicBezierPattern.MatchString(s)
}

// Validate checks every leaf of g and reports all failures as FieldErrors.
func Validate(g Graph) error {
	if err := validatorInstance().Struct(g); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError normalizes validator errors into field-level validation errors.
func convertValidationError(err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return tserrors.NewValidationError("tokens", err.Error(), err)
	}

	var fe tserrors.FieldErrors
	for _, ve := range ves {
		field := fieldPath(ve)
		fe.Add(field, describeFailure(ve), nil)
	}
	return fe.Err()
}

// fieldPath strips the root type name from the JSON-tag namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func describeFailure(fe validator.FieldError) string {
	switch fe.Tag() {
	case "hexcolor6":
		return fmt.Sprintf("%q is not a #RRGGBB color", fe.Value())
	case "easing":
		return fmt.Sprintf("%q is not a supported easing function", fe.Value())
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("%v must be one of [%s]", fe.Value(), fe.Param())
	case "gt":
		return fmt.Sprintf("%v must be greater than %s", fe.Value(), fe.Param())
	case "gte":
		return fmt.Sprintf("%v must be at least %s", fe.Value(), fe.Param())
	case "lt", "lte":
		return fmt.Sprintf("%v must be at most %s", fe.Value(), fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
