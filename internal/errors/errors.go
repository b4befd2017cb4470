// Package errors provides shared error types for the ETS Score upstream client.
package errors

import (
	"fmt"
)

// ValidationError indicates invalid or missing tool input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty for missing fields)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NotFoundError indicates an entity could not be resolved upstream.
type NotFoundError struct {
	EntityType string // "location", "hotel"
	Identifier string // city name or hotel code
}

func (e *NotFoundError) Error() string {
	if e.EntityType != "" {
		return fmt.Sprintf("%s not found: %s", e.EntityType, e.Identifier)
	}
	return fmt.Sprintf("not found: %s", e.Identifier)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(entityType, identifier string) *NotFoundError {
	return &NotFoundError{
		EntityType: entityType,
		Identifier: identifier,
	}
}

// UpstreamError indicates a transport or non-2xx failure from the vendor API.
// Body carries the upstream response body when one was available, so failures
// are logged with enough context to reproduce.
type UpstreamError struct {
	Method     string // HTTP method
	Path       string // endpoint path
	StatusCode int    // zero when the request never produced a response
	Body       string // upstream response body, possibly truncated
	Err        error  // underlying transport error, if any
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream request %s %s failed: %v", e.Method, e.Path, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("upstream request %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("upstream request %s %s returned %d", e.Method, e.Path, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsUpstream returns true if the error is an UpstreamError.
func IsUpstream(err error) bool {
	_, ok := err.(*UpstreamError)
	return ok
}

// Code returns a short classification label for metrics and logging.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidation(err):
		return "validation"
	case IsNotFound(err):
		return "not_found"
	case IsUpstream(err):
		return "upstream"
	default:
		return "internal"
	}
}
