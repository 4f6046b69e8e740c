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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Preset errors
	ErrPresetNotFound ErrorCode = "PRESET_NOT_FOUND"

	// Dispatch and planning errors
	ErrNoHandlerFound   ErrorCode = "NO_HANDLER_FOUND"
	ErrMappingCollision ErrorCode = "MAPPING_COLLISION"

	// Action errors
	ErrActionInvalid ErrorCode = "ACTION_INVALID"
	ErrActionExecute ErrorCode = "ACTION_EXECUTE"

	// Check errors
	ErrOutOfSync ErrorCode = "OUT_OF_SYNC"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// VibesyncError represents a structured error with code and details
type VibesyncError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *VibesyncError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *VibesyncError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *VibesyncError) Is(target error) bool {
	var targetErr *VibesyncError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new VibesyncError with the given code and message
func New(code ErrorCode, message string) *VibesyncError {
	return &VibesyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new VibesyncError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *VibesyncError {
	return &VibesyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a VibesyncError
func Wrap(err error, code ErrorCode, message string) *VibesyncError {
	if err == nil {
		return nil
	}
	return &VibesyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *VibesyncError {
	if err == nil {
		return nil
	}
	return &VibesyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *VibesyncError) WithDetail(key string, value interface{}) *VibesyncError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if any error in the chain carries the given code
func IsErrorCode(err error, code ErrorCode) bool {
	return errors.Is(err, &VibesyncError{Code: code})
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a VibesyncError
func GetErrorCode(err error) ErrorCode {
	var vsErr *VibesyncError
	if errors.As(err, &vsErr) {
		return vsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a VibesyncError
func GetErrorDetails(err error) map[string]interface{} {
	var vsErr *VibesyncError
	if errors.As(err, &vsErr) {
		return vsErr.Details
	}
	return nil
}
