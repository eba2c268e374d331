// ABOUTME: Custom error types for the core business logic
// ABOUTME: Classifies loader failures so they can be logged and converted to fallbacks

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NetworkError represents a transport failure or a non-success HTTP status
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("network failure for %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("network failure for %s: HTTP %d", e.URL, e.StatusCode)
}

// Unwrap returns the underlying transport error
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MalformedResponseError represents a response missing the expected JSON shape
type MalformedResponseError struct {
	API    string
	Reason string
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response from %s: %s", e.API, e.Reason)
}

// EmptyResultError is returned when extraction produced zero records
type EmptyResultError struct {
	PageID string
}

// Error implements the error interface
func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no species extracted from page %s", e.PageID)
}

// ResourceMissingError represents an image that could not be resolved or reached
type ResourceMissingError struct {
	Resource string
	Reason   string
}

// Error implements the error interface
func (e *ResourceMissingError) Error() string {
	return fmt.Sprintf("resource missing: %s (%s)", e.Resource, e.Reason)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsNetwork checks if an error is a NetworkError
func IsNetwork(err error) bool {
	var networkErr *NetworkError
	return errors.As(err, &networkErr)
}

// IsMalformedResponse checks if an error is a MalformedResponseError
func IsMalformedResponse(err error) bool {
	var malformedErr *MalformedResponseError
	return errors.As(err, &malformedErr)
}

// IsEmptyResult checks if an error is an EmptyResultError
func IsEmptyResult(err error) bool {
	var emptyErr *EmptyResultError
	return errors.As(err, &emptyErr)
}

// IsResourceMissing checks if an error is a ResourceMissingError
func IsResourceMissing(err error) bool {
	var missingErr *ResourceMissingError
	return errors.As(err, &missingErr)
}

// Kind returns a short label for the error class, used as a log field
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsNetwork(err):
		return "network_failure"
	case IsMalformedResponse(err):
		return "malformed_response"
	case IsEmptyResult(err):
		return "empty_result"
	case IsResourceMissing(err):
		return "resource_missing"
	case IsValidation(err):
		return "validation"
	case IsNotFound(err):
		return "not_found"
	default:
		return "unknown"
	}
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
