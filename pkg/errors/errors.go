package errors

import (
	"errors"
	"fmt"
	"maps"
)

// ErrorCode identifies a failure class. Codes are stable and safe to
// assert on in tests and scripts.
type ErrorCode string

const (
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Glob and regex compilation
	ErrBareEscape          ErrorCode = "BARE_ESCAPE"
	ErrUnclosedClass       ErrorCode = "UNCLOSED_CLASS"
	ErrUnclosedAlternation ErrorCode = "UNCLOSED_ALTERNATION"
	ErrReversedRange       ErrorCode = "REVERSED_RANGE"
	ErrRangeAfterRange     ErrorCode = "RANGE_AFTER_RANGE"
	ErrInvalidRegex        ErrorCode = "INVALID_REGEX"

	// Configuration
	ErrConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigValid    ErrorCode = "CONFIG_INVALID"

	// Classification
	ErrFileAccess  ErrorCode = "FILE_ACCESS"
	ErrHashFailed  ErrorCode = "HASH_FAILED"
	ErrHashSkipped ErrorCode = "HASH_SKIPPED"

	// Execution
	ErrDeleteFailed       ErrorCode = "DELETE_FAILED"
	ErrRenameFailed       ErrorCode = "RENAME_FAILED"
	ErrMoveFailed         ErrorCode = "MOVE_FAILED"
	ErrCollisionExhausted ErrorCode = "COLLISION_EXHAUSTED"
	ErrExecutionFailed    ErrorCode = "EXECUTION_FAILED"
)

// CleanError carries a code, a message, optional details and the cause
type CleanError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func newError(code ErrorCode, message string, cause error) *CleanError {
	return &CleanError{
		Code:    code,
		Message: message,
		Details: map[string]interface{}{},
		Wrapped: cause,
	}
}

// New returns a CleanError without a cause
func New(code ErrorCode, message string) *CleanError {
	return newError(code, message, nil)
}

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CleanError {
	return newError(code, fmt.Sprintf(format, args...), nil)
}

// Wrap attaches code and message to err. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *CleanError {
	if err == nil {
		return nil
	}
	return newError(code, message, err)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CleanError {
	if err == nil {
		return nil
	}
	return newError(code, fmt.Sprintf(format, args...), err)
}

func (e *CleanError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

func (e *CleanError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a CleanError with the same code
func (e *CleanError) Is(target error) bool {
	var other *CleanError
	return errors.As(target, &other) && other.Code == e.Code
}

// WithDetail sets one detail and returns e for chaining
func (e *CleanError) WithDetail(key string, value interface{}) *CleanError {
	if e.Details == nil {
		e.Details = map[string]interface{}{}
	}
	e.Details[key] = value
	return e
}

// WithDetails merges details into e
func (e *CleanError) WithDetails(details map[string]interface{}) *CleanError {
	if e.Details == nil {
		e.Details = map[string]interface{}{}
	}
	maps.Copy(e.Details, details)
	return e
}

func asCleanError(err error) (*CleanError, bool) {
	var cleanErr *CleanError
	ok := errors.As(err, &cleanErr)
	return cleanErr, ok
}

// IsErrorCode reports whether the outermost CleanError in err's chain has code
func IsErrorCode(err error, code ErrorCode) bool {
	cleanErr, ok := asCleanError(err)
	return ok && cleanErr.Code == code
}

// GetErrorCode returns err's code, or ErrUnknown for other errors
func GetErrorCode(err error) ErrorCode {
	if cleanErr, ok := asCleanError(err); ok {
		return cleanErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns err's details, or nil for other errors
func GetErrorDetails(err error) map[string]interface{} {
	if cleanErr, ok := asCleanError(err); ok {
		return cleanErr.Details
	}
	return nil
}
