package engine

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of an extraction error.
type ErrorClass string

const (
	// ErrorClassValidation indicates a manifest or input problem.
	// Fixing the manifest is the only remedy.
	ErrorClassValidation ErrorClass = "validation"

	// ErrorClassPersistence indicates a store failure. The rendered
	// output may still be usable even though it was not recorded.
	ErrorClassPersistence ErrorClass = "persistence"

	// ErrorClassInternal indicates an unexpected engine failure.
	ErrorClassInternal ErrorClass = "internal"
)

// ExtractError represents a classified error with context.
type ExtractError struct {
	// Class is the error classification.
	Class ErrorClass `json:"class"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Resource is the resource instance that caused the error, if any.
	Resource string `json:"resource,omitempty"`

	// Parameter is the parameter being processed, if any.
	Parameter string `json:"parameter,omitempty"`

	// Err is the underlying error.
	Err error `json:"-"`
}

// Error implements the error interface.
func (e *ExtractError) Error() string {
	switch {
	case e.Resource != "" && e.Parameter != "":
		return fmt.Sprintf("[%s] %s (resource=%s, parameter=%s): %s",
			e.Class, e.Message, e.Resource, e.Parameter, e.unwrapMessage())
	case e.Resource != "":
		return fmt.Sprintf("[%s] %s (resource=%s): %s",
			e.Class, e.Message, e.Resource, e.unwrapMessage())
	}
	return fmt.Sprintf("[%s] %s: %s", e.Class, e.Message, e.unwrapMessage())
}

// Unwrap returns the underlying error for error chain inspection.
func (e *ExtractError) Unwrap() error {
	return e.Err
}

func (e *ExtractError) unwrapMessage() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, err error) *ExtractError {
	return &ExtractError{
		Class:   ErrorClassValidation,
		Message: message,
		Err:     err,
	}
}

// NewPersistenceError creates a new persistence error.
func NewPersistenceError(message string, err error) *ExtractError {
	return &ExtractError{
		Class:   ErrorClassPersistence,
		Message: message,
		Err:     err,
	}
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, err error) *ExtractError {
	return &ExtractError{
		Class:   ErrorClassInternal,
		Message: message,
		Err:     err,
	}
}

// WithResource adds resource context to an error.
func (e *ExtractError) WithResource(name string) *ExtractError {
	e.Resource = name
	return e
}

// WithParameter adds parameter context to an error.
func (e *ExtractError) WithParameter(name string) *ExtractError {
	e.Parameter = name
	return e
}

// IsValidation returns true if the error is classified as validation.
func IsValidation(err error) bool {
	var e *ExtractError
	if errors.As(err, &e) {
		return e.Class == ErrorClassValidation
	}
	return false
}

// IsPersistence returns true if the error is classified as persistence.
func IsPersistence(err error) bool {
	var e *ExtractError
	if errors.As(err, &e) {
		return e.Class == ErrorClassPersistence
	}
	return false
}
