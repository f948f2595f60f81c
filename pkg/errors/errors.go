package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Line source errors
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrIsADirectory ErrorCode = "IS_A_DIRECTORY"
	ErrNotAFile     ErrorCode = "NOT_A_FILE"
	ErrPermission   ErrorCode = "PERMISSION"

	// Request errors
	ErrInvalidPattern   ErrorCode = "INVALID_PATTERN"
	ErrInvalidFieldSpec ErrorCode = "INVALID_FIELD_SPEC"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// ShellfastError represents a structured error with code and details
type ShellfastError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ShellfastError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ShellfastError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ShellfastError) Is(target error) bool {
	var targetErr *ShellfastError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ShellfastError with the given code and message
func New(code ErrorCode, message string) *ShellfastError {
	return &ShellfastError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ShellfastError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ShellfastError {
	return &ShellfastError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ShellfastError
func Wrap(err error, code ErrorCode, message string) *ShellfastError {
	if err == nil {
		return nil
	}
	return &ShellfastError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ShellfastError {
	if err == nil {
		return nil
	}
	return &ShellfastError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ShellfastError) WithDetail(key string, value interface{}) *ShellfastError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sfErr *ShellfastError
	if errors.As(err, &sfErr) {
		return sfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// the error is not a ShellfastError
func GetErrorCode(err error) ErrorCode {
	var sfErr *ShellfastError
	if errors.As(err, &sfErr) {
		return sfErr.Code
	}
	return ErrUnknown
}
