package errors

import (
	"fmt"
	"strings"
)

// ParseError reports an unreadable file, with the line when the decoder
// provides one.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports a malformed token value at a specific field path.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FieldErrors collects independent field-level validation failures so a
// single bad token does not hide the others.
type FieldErrors []*ValidationError

// Add appends a field failure.
func (fe *FieldErrors) Add(field, message string, err error) {
	*fe = append(*fe, &ValidationError{Field: field, Message: message, Err: err})
}

// Append adds err to the collection. ValidationErrors and nested FieldErrors
// keep their own field path; anything else is attributed to field.
func (fe *FieldErrors) Append(field string, err error) {
	switch typed := err.(type) {
	case nil:
		return
	case *ValidationError:
		*fe = append(*fe, typed)
	case FieldErrors:
		*fe = append(*fe, typed...)
	default:
		fe.Add(field, err.Error(), err)
	}
}

// Fields returns the offending field paths in report order.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for _, err := range fe {
		fields = append(fields, err.Field)
	}
	return fields
}

// Err returns nil when no failures were collected.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

func (fe FieldErrors) Error() string {
	switch len(fe) {
	case 0:
		return ""
	case 1:
		return fe[0].Error()
	}
	parts := make([]string, 0, len(fe))
	for _, err := range fe {
		parts = append(parts, err.Error())
	}
	return fmt.Sprintf("%d validation errors: %s", len(fe), strings.Join(parts, "; "))
}

// Unwrap exposes every collected failure to errors.Is / errors.As.
func (fe FieldErrors) Unwrap() []error {
	errs := make([]error, 0, len(fe))
	for _, err := range fe {
		errs = append(errs, err)
	}
	return errs
}

// ResolutionError marks a strategy context value outside the known
// enumeration space. The resolver itself never returns it; strict callers do.
type ResolutionError struct {
	Field string
	Value string
}

// NewResolutionError constructs a ResolutionError.
func NewResolutionError(field, value string) error {
	return &ResolutionError{Field: field, Value: value}
}

func (e *ResolutionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("resolution error: %s: unknown value %q", e.Field, e.Value)
}

// SerializationError is returned for an unrecognized export format key.
type SerializationError struct {
	Format string
	Err    error
}

// NewSerializationError constructs a SerializationError.
func NewSerializationError(format string, err error) error {
	return &SerializationError{Format: format, Err: err}
}

func (e *SerializationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("serialization error [%s]: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("serialization error: unknown format %q", e.Format)
}

// Unwrap exposes the underlying error.
func (e *SerializationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ImportError represents a structurally invalid input document.
type ImportError struct {
	Source  string
	Field   string
	Message string
	Err     error
}

// NewImportError constructs an ImportError. The message defaults to the
// wrapped error text.
func NewImportError(source, field, message string, err error) error {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &ImportError{Source: source, Field: field, Message: message, Err: err}
}

func (e *ImportError) Error() string {
	if e == nil {
		return ""
	}
	prefix := "import error"
	if e.Source != "" {
		prefix = fmt.Sprintf("import error: %s", e.Source)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", prefix, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ImportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
