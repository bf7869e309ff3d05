package errors

import (
	"net/http"

	"beacon/internal/domain/service"
	"beacon/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Registration input errors
	ErrMissingToken = NewBaseError(
		http.StatusBadRequest,
		"MISSING_TOKEN",
		"A delivery token is required",
		"",
	)

	ErrMissingIdentity = NewBaseError(
		http.StatusBadRequest,
		"MISSING_IDENTITY",
		"An installation identifier is required",
		"",
	)

	// Send input errors
	ErrEmptyPayload = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_PAYLOAD",
		"A notification needs at least a title or a body",
		"",
	)

	ErrAmbiguousTarget = NewBaseError(
		http.StatusBadRequest,
		"AMBIGUOUS_TARGET",
		"Exactly one of device_id and token must be provided",
		"",
	)

	// Dispatch errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"No device is registered under that ID",
		"",
	)

	ErrNoDevicesRegistered = NewBaseError(
		http.StatusBadRequest,
		"NO_DEVICES_REGISTERED",
		"There are no deliverable devices to broadcast to",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// SendFailedError wraps a classified push-gateway failure, implementing the
// AppError interface. A permanently invalid token is a client-actionable
// stale-registration condition rather than an upstream fault, so it maps to
// 410 instead of 502.
type SendFailedError struct {
	kind  service.FailureKind
	cause error
}

// NewSendFailedError creates a gateway-failure error for the given kind.
func NewSendFailedError(kind service.FailureKind, cause error) AppError {
	return &SendFailedError{kind: kind, cause: cause}
}

// Error implements the error interface
func (e *SendFailedError) Error() string {
	return errors.Wrapf(e.cause, "send failed (%s)", e.kind).Error()
}

// Unwrap exposes the gateway error for errors.As chains.
func (e *SendFailedError) Unwrap() error {
	return e.cause
}

// Kind returns the classified failure kind.
func (e *SendFailedError) Kind() service.FailureKind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *SendFailedError) HTTPCode() int {
	if e.kind == service.FailureTokenInvalid {
		return http.StatusGone
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *SendFailedError) ErrorCode() string {
	if e.kind == service.FailureTokenInvalid {
		return "STALE_REGISTRATION"
	}

	return "SEND_FAILED"
}

// Message returns the user-friendly error message
func (e *SendFailedError) Message() string {
	if e.kind == service.FailureTokenInvalid {
		return "The device's delivery token is no longer registered; the client must re-register"
	}

	return "The push gateway could not deliver the notification"
}

// Details returns detailed error information
func (e *SendFailedError) Details() string {
	return string(e.kind)
}
