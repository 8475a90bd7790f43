package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tokensmith/internal/export"
	"github.com/alexisbeaulieu97/tokensmith/internal/logger"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	envNamePattern = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := logger.ParseLevel(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("export_format", func(fl validator.FieldLevel) bool {
			_, err := export.ParseFormat(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("env_name", func(fl validator.FieldLevel) bool {
			return envNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}
