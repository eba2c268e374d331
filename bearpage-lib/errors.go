// ABOUTME: Error types and handling for the BearPage library
// ABOUTME: Provides structured errors with context for library operations

package bearpage

import (
	"errors"
	"fmt"

	coreerrors "bearpage/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNotFound indicates a resource was not found
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeNetwork indicates a network error
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeParsing indicates a malformed or empty encyclopedia response
	ErrorTypeParsing ErrorType = "parsing"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// Common errors
var (
	// ErrNoHTTPClient is returned when the client is built without a transport
	ErrNoHTTPClient = NewError(ErrorTypeConfiguration, "no HTTP client configured")

	// ErrNoLogger is returned when the client is built without a logger
	ErrNoLogger = NewError(ErrorTypeConfiguration, "no logger configured")
)

// wrapCoreError converts a core error into a library error
func wrapCoreError(err error) error {
	if err == nil {
		return nil
	}

	var libErr *Error
	if errors.As(err, &libErr) {
		return err
	}

	switch {
	case coreerrors.IsValidation(err):
		var v *coreerrors.ValidationError
		errors.As(err, &v)
		return NewError(ErrorTypeValidation, v.Message).WithCause(err).WithContext("field", v.Field)
	case coreerrors.IsNotFound(err):
		return NewError(ErrorTypeNotFound, "resource not found").WithCause(err)
	case coreerrors.IsNetwork(err):
		return NewError(ErrorTypeNetwork, "encyclopedia request failed").WithCause(err)
	case coreerrors.IsMalformedResponse(err), coreerrors.IsEmptyResult(err):
		return NewError(ErrorTypeParsing, "could not extract species").WithCause(err).
			WithContext("kind", coreerrors.Kind(err))
	default:
		return NewError(ErrorTypeInternal, "operation failed").WithCause(err)
	}
}

func hasType(err error, t ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return hasType(err, ErrorTypeNotFound)
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	return hasType(err, ErrorTypeNetwork)
}

// IsParsingError checks if an error is a parsing error
func IsParsingError(err error) bool {
	return hasType(err, ErrorTypeParsing)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return hasType(err, ErrorTypeConfiguration)
}
