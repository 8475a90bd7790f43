package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// Error codes carried in the envelope.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeImport        = "IMPORT_ERROR"
	CodeSerialization = "SERIALIZATION_ERROR"
	CodeResolution    = "RESOLUTION_ERROR"
	CodeBadRequest    = "BAD_REQUEST"
	CodeInternal      = "INTERNAL_ERROR"
)

// APIError is the body of an error response.
type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}

// ErrorEnvelope wraps APIError as {"error": {...}}.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// RespondError maps err onto a status code and envelope.
func RespondError(c *gin.Context, err error) {
	status, apiErr := classify(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, ErrorEnvelope{Error: apiErr})
}

// RespondBadRequest reports a request body that could not be bound.
func RespondBadRequest(c *gin.Context, err error) {
	msg := "invalid request body"
	if err != nil {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorEnvelope{Error: APIError{Message: msg, Code: CodeBadRequest}})
}

// RespondOK writes payload as JSON.
func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func classify(err error) (int, APIError) {
	if err == nil {
		return http.StatusInternalServerError, APIError{Message: "unknown error", Code: CodeInternal}
	}

	var (
		importErr     *tserrors.ImportError
		fieldErrs     tserrors.FieldErrors
		validationErr *tserrors.ValidationError
		resolutionErr *tserrors.ResolutionError
		serialErr     *tserrors.SerializationError
	)

	switch {
	case errors.As(err, &importErr):
		return http.StatusBadRequest, APIError{Message: err.Error(), Code: CodeImport, Field: importErr.Field}
	case errors.As(err, &fieldErrs) && len(fieldErrs) > 0:
		return http.StatusUnprocessableEntity, APIError{Message: err.Error(), Code: CodeValidation, Field: fieldErrs[0].Field}
	case errors.As(err, &validationErr):
		return http.StatusUnprocessableEntity, APIError{Message: err.Error(), Code: CodeValidation, Field: validationErr.Field}
	case errors.As(err, &resolutionErr):
		return http.StatusBadRequest, APIError{Message: err.Error(), Code: CodeResolution, Field: resolutionErr.Field}
	case errors.As(err, &serialErr):
		return http.StatusNotFound, APIError{Message: err.Error(), Code: CodeSerialization}
	default:
		return http.StatusInternalServerError, APIError{Message: err.Error(), Code: CodeInternal}
	}
}
