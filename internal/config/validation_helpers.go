package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// ValidateConfig checks every field and reports all failures.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return tserrors.NewValidationError("config", "configuration is nil", nil)
	}
	return convertValidationError(validatorInstance().Struct(cfg))
}

// convertValidationError normalizes validator errors into field-level validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return tserrors.NewValidationError("config", err.Error(), err)
	}

	var fe tserrors.FieldErrors
	for _, ve := range ves {
		field := yamlishFieldName(ve)
		fe.Add(field, fmt.Sprintf("%v failed validation for tag '%s'", ve.Value(), ve.Tag()), nil)
	}
	return fe.Err()
}

// yamlishFieldName maps a struct namespace such as Config.Suggest.MaxTokens
// to the YAML key path suggest.max_tokens.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 0 {
		parts = parts[1:]
	}

	t := reflect.TypeOf(Config{})
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		field, ok := t.FieldByName(part)
		if !ok {
			keys = append(keys, strings.ToLower(part))
			continue
		}
		keys = append(keys, strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0])
		t = field.Type
	}
	return strings.Join(keys, ".")
}
