package goerror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotFound indicates that the requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict indicates that the request could not be completed due to a conflict.
	ErrConflict = errors.New("resource conflict")
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	// TypeServer represents server-side failures.
	TypeServer Type = iota
	// TypeBusiness represents business rule violations.
	TypeBusiness
	// TypeValidation represents input validation failures.
	TypeValidation
)

// String returns the string representation of the error type.
func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to HTTP status codes.
type Code int

const (
	// CodeDatabase represents a persistence or otherwise unspecified server failure.
	CodeDatabase Code = iota
	// CodeUsernameRequired indicates a registration attempt without a username.
	CodeUsernameRequired
	// CodeUsernameNotUnique indicates a registration conflict on the username.
	CodeUsernameNotUnique
	// CodeUserIDRequired indicates a request missing its user identifier.
	CodeUserIDRequired
	// CodeValidationFailed indicates one or more invalid exercise fields.
	CodeValidationFailed
	// CodeUserNotFound indicates the referenced user does not exist.
	CodeUserNotFound
	// CodeInvalidDate indicates an unparsable calendar date.
	CodeInvalidDate
	// CodeInvalidFormat indicates an invalid request body.
	CodeInvalidFormat
)

// String returns the string representation of the error code.
func (c Code) String() string {
	switch c {
	case CodeUsernameRequired:
		return "USERNAME_REQUIRED"
	case CodeUsernameNotUnique:
		return "USERNAME_NOT_UNIQUE"
	case CodeUserIDRequired:
		return "USER_ID_REQUIRED"
	case CodeValidationFailed:
		return "VALIDATION_ERROR"
	case CodeUserNotFound:
		return "USER_NOT_FOUND"
	case CodeInvalidDate:
		return "INVALID_DATE"
	case CodeInvalidFormat:
		return "INVALID_FORMAT"
	case CodeDatabase:
		return "DB_ERROR"
	default:
		return "DB_ERROR"
	}
}

// Error is a structured error used across the application.
//
// It can wrap an underlying error while also carrying a user-facing message,
// a high-level type, a stable error code, and, for validation failures, the
// collected per-field messages.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
	details []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}

	if e.msg != "" {
		return e.msg
	}

	return "Unknown error"
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Details: [%s], Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		strings.Join(e.details, "; "),
		e.err,
	)
}

// Msg returns the user-facing error message, if set.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Details returns the collected validation messages, if any.
func (e *Error) Details() []string {
	return e.details
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeUserNotFound:
		return http.StatusNotFound
	case CodeUsernameRequired, CodeUsernameNotUnique, CodeUserIDRequired,
		CodeValidationFailed, CodeInvalidDate, CodeInvalidFormat:
		return http.StatusBadRequest
	case CodeDatabase:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewServer creates a server-type error wrapping the underlying failure.
func NewServer(err error) error {
	return &Error{err: err, msg: "Database error occurred", errType: TypeServer, code: CodeDatabase}
}

// NewBusiness creates a business-type error with the specified message and code.
func NewBusiness(msg string, code Code) error {
	return &Error{msg: msg, errType: TypeBusiness, code: code}
}

// NewValidation creates a validation-type error carrying the collected
// per-field messages.
func NewValidation(details []string) error {
	return &Error{
		msg:     "Validation failed",
		errType: TypeValidation,
		code:    CodeValidationFailed,
		details: details,
	}
}

// NewInvalidFormat creates a validation error for an invalid request body.
func NewInvalidFormat(msgs ...string) error {
	msg := "Invalid request body"
	if len(msgs) > 0 {
		msg = msgs[0]
	}
	return &Error{msg: msg, errType: TypeValidation, code: CodeInvalidFormat}
}
