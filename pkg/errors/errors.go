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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Style errors
	ErrStyleInvalid ErrorCode = "STYLE_INVALID"

	// Page errors
	ErrPageRead ErrorCode = "PAGE_READ"

	// Output errors
	ErrOutputWrite ErrorCode = "OUTPUT_WRITE"
	ErrOutputFlush ErrorCode = "OUTPUT_FLUSH"
)

// PageError represents a structured error with code and details
type PageError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PageError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PageError) Unwrap() error {
	return e.Wrapped
}

// Is matches any PageError carrying the same code
func (e *PageError) Is(target error) bool {
	var targetErr *PageError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PageError with the given code and message
func New(code ErrorCode, message string) *PageError {
	return &PageError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PageError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PageError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a PageError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *PageError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PageError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *PageError) WithDetail(key string, value interface{}) *PageError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pageErr *PageError
	if errors.As(err, &pageErr) {
		return pageErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PageError
func GetErrorCode(err error) ErrorCode {
	var pageErr *PageError
	if errors.As(err, &pageErr) {
		return pageErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PageError
func GetErrorDetails(err error) map[string]interface{} {
	var pageErr *PageError
	if errors.As(err, &pageErr) {
		return pageErr.Details
	}
	return nil
}
