package errors

import "fmt"

// Application error types organized by category for better error handling

type ErrorType string

// Domain/Business Logic Errors - errors related to input validation
const (
	ValidationError ErrorType = "VALIDATION_ERROR"
)

// Infrastructure Errors - errors related to the weather provider and local I/O
const (
	TransportError    ErrorType = "TRANSPORT_ERROR"
	MissingFieldError ErrorType = "MISSING_FIELD_ERROR"
	OutputError       ErrorType = "OUTPUT_ERROR"
)

// System/Configuration Errors - errors related to application configuration
const (
	ConfigurationError ErrorType = "CONFIGURATION_ERROR"
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error

	// Field holds the dotted path of the missing provider field for
	// MissingFieldError values, empty otherwise.
	Field string
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

// Infrastructure Error Constructors
func NewTransportError(message string, cause error) *AppError {
	return Wrap(TransportError, message, cause)
}

func NewMissingFieldError(field string) *AppError {
	return &AppError{
		Type:    MissingFieldError,
		Message: fmt.Sprintf("required field %q missing from provider response", field),
		Field:   field,
	}
}

func NewOutputError(message string, cause error) *AppError {
	return Wrap(OutputError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}
