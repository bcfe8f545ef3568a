// Package apperror defines the error taxonomy shared by the workflow layers
// and its translation to HTTP status codes.
package apperror

import (
	"errors"
	"net/http"
)

// Code is a stable machine-readable error code.
type Code string

const (
	CodeValidation         Code = "VALIDATION_ERROR"
	CodeInvalidStatus      Code = "INVALID_STATUS"
	CodeDuplicateEmail     Code = "DUPLICATE_EMAIL"
	CodeUnauthorized       Code = "UNAUTHORIZED"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeInvalidToken       Code = "INVALID_TOKEN"
	CodeForbidden          Code = "FORBIDDEN"
	CodeNotFound           Code = "NOT_FOUND"
	CodeInvalidTransition  Code = "INVALID_TRANSITION"
	CodeUnavailable        Code = "SERVICE_UNAVAILABLE"
	CodeInternal           Code = "INTERNAL"
)

// HTTPStatus maps a code to the response status the boundary returns.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeValidation, CodeInvalidStatus, CodeDuplicateEmail:
		return http.StatusBadRequest
	case CodeUnauthorized, CodeInvalidCredentials, CodeInvalidToken:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidTransition:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Error is a typed failure carrying a code, a client-safe message and an
// optional underlying cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Sentinels for errors.Is comparisons.
var (
	ErrValidation         = New(CodeValidation, "validation failed")
	ErrInvalidStatus      = New(CodeInvalidStatus, "invalid status")
	ErrDuplicateEmail     = New(CodeDuplicateEmail, "email already in use")
	ErrUnauthorized       = New(CodeUnauthorized, "authentication required")
	ErrInvalidCredentials = New(CodeInvalidCredentials, "invalid credentials")
	ErrInvalidToken       = New(CodeInvalidToken, "invalid or expired token")
	ErrForbidden          = New(CodeForbidden, "forbidden")
	ErrNotFound           = New(CodeNotFound, "not found")
	ErrInvalidTransition  = New(CodeInvalidTransition, "invalid status transition")
	ErrUnavailable        = New(CodeUnavailable, "service unavailable")
	ErrInternal           = New(CodeInternal, "internal error")
)

func Validation(message string) *Error {
	return New(CodeValidation, message)
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

func Forbidden(message string) *Error {
	return New(CodeForbidden, message)
}

func Internal(message string, cause error) *Error {
	return Wrap(CodeInternal, message, cause)
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// PublicMessage returns the message safe to send to a client. Internal
// failures never leak their cause.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Code != CodeInternal {
		return appErr.Message
	}
	return "internal server error"
}
