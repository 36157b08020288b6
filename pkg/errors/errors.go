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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Shortcut errors. Raised before any automation runs.
	ErrUnsupportedKey ErrorCode = "UNSUPPORTED_KEY"

	// Automation errors
	ErrAutomationFailure ErrorCode = "AUTOMATION_FAILURE"

	// Storage errors
	ErrStorageRead  ErrorCode = "STORAGE_READ"
	ErrStorageWrite ErrorCode = "STORAGE_WRITE"
)

// WheresmyError represents a structured error with code and details
type WheresmyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WheresmyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WheresmyError) Unwrap() error {
	return e.Wrapped
}

// Is matches any WheresmyError carrying the same code
func (e *WheresmyError) Is(target error) bool {
	var targetErr *WheresmyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WheresmyError with the given code and message
func New(code ErrorCode, message string) *WheresmyError {
	return &WheresmyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WheresmyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WheresmyError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *WheresmyError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WheresmyError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *WheresmyError) WithDetail(key string, value interface{}) *WheresmyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var wErr *WheresmyError
	if errors.As(err, &wErr) {
		return wErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WheresmyError
func GetErrorCode(err error) ErrorCode {
	var wErr *WheresmyError
	if errors.As(err, &wErr) {
		return wErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WheresmyError
func GetErrorDetails(err error) map[string]interface{} {
	var wErr *WheresmyError
	if errors.As(err, &wErr) {
		return wErr.Details
	}
	return nil
}
