package domain

import (
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Generation specific errors
	CodeObjectiveNotFound  ErrorCode = "OBJECTIVE_NOT_FOUND"
	CodeGenerationFailed   ErrorCode = "GENERATION_FAILED"
	CodeGenerationTimeout  ErrorCode = "GENERATION_TIMEOUT"
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a key/value pair to the error's detail map.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper constructors for common errors

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewObjectiveNotFoundError(objectiveID string) *DomainError {
	return NewError(CodeObjectiveNotFound,
		fmt.Sprintf("Learning objective '%s' not found", objectiveID), nil).
		WithContext("objective_id", objectiveID).
		WithContext("suggestion", "First generate learning objectives using /api/v1/generate/objectives")
}

func NewGenerationFailedError(message string, cause error) *DomainError {
	return NewError(CodeGenerationFailed, message, cause).
		WithContext("suggestion", "Try rephrasing your topic or target audience with more specific details")
}

func NewGenerationTimeoutError(timeoutSeconds int) *DomainError {
	return NewError(CodeGenerationTimeout,
		fmt.Sprintf("Generation exceeded %d second timeout", timeoutSeconds), nil).
		WithContext("timeout_seconds", timeoutSeconds).
		WithContext("suggestion", "The LLM took too long to respond. Try again or consider using a faster model")
}

func NewServiceUnavailableError(message string, cause error) *DomainError {
	return NewError(CodeServiceUnavailable, message, cause).
		WithContext("suggestion", "Check that Ollama is running and accessible")
}

// ValidationError represents a single invalid request field.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field errors for a request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func NewValidationError(message string) error {
	return ValidationErrors{{Field: "", Message: message}}
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Field: field, Message: "has an invalid format", Value: value}
}

func NewOutOfRangeError(field string, value, min, max interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be between %v and %v", min, max),
		Value:   value,
	}
}
