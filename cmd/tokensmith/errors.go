package main

import (
	"errors"
	"fmt"

	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	msg := fmt.Sprintf("Failed to %s: %s\n\nError: %v", e.operation, e.context, e.cause)
	if field := fieldOf(e.cause); field != "" {
		msg += "\n\nField: " + field
	}
	return msg + "\n\nSuggestion: " + e.suggestion
}

func (e *commandError) Unwrap() error {
	return e.cause
}

// fieldOf returns the most specific field path carried by err.
func fieldOf(err error) string {
	var (
		fieldErrs     tserrors.FieldErrors
		validationErr *tserrors.ValidationError
		importErr     *tserrors.ImportError
		resolutionErr *tserrors.ResolutionError
	)
	switch {
	case errors.As(err, &fieldErrs) && len(fieldErrs) > 0:
		return fieldErrs[0].Field
	case errors.As(err, &validationErr):
		return validationErr.Field
	case errors.As(err, &importErr):
		return importErr.Field
	case errors.As(err, &resolutionErr):
		return resolutionErr.Field
	}
	return ""
}
