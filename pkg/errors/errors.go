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

	// Grammar errors (see pkg/path for the underlying typed LabelError)
	ErrNonAscii         ErrorCode = "NON_ASCII"
	ErrInvalidCharacter ErrorCode = "INVALID_CHARACTER"

	// Parser errors
	ErrParseSyntax ErrorCode = "PARSE_SYNTAX"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// File errors (CLI only; the library itself never touches files)
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// DtabError represents a structured error with code and details
type DtabError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DtabError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DtabError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DtabError) Is(target error) bool {
	var targetErr *DtabError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DtabError with the given code and message
func New(code ErrorCode, message string) *DtabError {
	return &DtabError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DtabError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DtabError {
	return &DtabError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DtabError
func Wrap(err error, code ErrorCode, message string) *DtabError {
	if err == nil {
		return nil
	}
	return &DtabError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DtabError {
	if err == nil {
		return nil
	}
	return &DtabError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DtabError) WithDetail(key string, value interface{}) *DtabError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DtabError) WithDetails(details map[string]interface{}) *DtabError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dtabErr *DtabError
	if errors.As(err, &dtabErr) {
		return dtabErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DtabError
func GetErrorCode(err error) ErrorCode {
	var dtabErr *DtabError
	if errors.As(err, &dtabErr) {
		return dtabErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DtabError
func GetErrorDetails(err error) map[string]interface{} {
	var dtabErr *DtabError
	if errors.As(err, &dtabErr) {
		return dtabErr.Details
	}
	return nil
}
